package typeset

import (
	"fmt"
	"strings"

	"qbank/internal/models"
)

// MainSubjectOrder is the fixed column order of the printed grid.
var MainSubjectOrder = []models.Subject{
	models.SubjectBiology,
	models.SubjectChemistry,
	models.SubjectMath,
	models.SubjectPhysics,
	models.SubjectEarthSpace,
}

// Block is one question to print, with its printed sequence number. The
// sequence is a layout concept and has nothing to do with storage ids.
type Block struct {
	Sequence int
	Question *models.Question
}

// Group is the unit a separator is printed after: one (number, subject) grid
// cell in the main document, one replacement slot in the replacements
// document.
type Group struct {
	Blocks []Block
}

type Document struct {
	Title  string
	Groups []Group
}

func (d Document) Empty() bool {
	for _, g := range d.Groups {
		if len(g.Blocks) > 0 {
			return false
		}
	}
	return true
}

type slotKey struct {
	subject models.Subject
	role    models.QuestionRole
	number  int
}

func indexBySlot(questions []*models.Question) map[slotKey]*models.Question {
	index := make(map[slotKey]*models.Question, len(questions))
	for _, q := range questions {
		key := slotKey{q.Subject, q.QuestionRole, q.QuestionNumber}
		if _, taken := index[key]; !taken {
			index[key] = q
		}
	}
	return index
}

// BuildMain lays out question numbers 1-5 for one round. The outer loop walks
// the numbers, the inner loop the fixed subject order, so the printed sequence
// for (number, subject) is (number-1)*5 + subjectIndex + 1. Tossup and bonus
// of a cell share the sequence number. Empty cells keep their separator so
// the page rhythm stays fixed.
func BuildMain(questions []*models.Question, roundLabel string) Document {
	index := indexBySlot(questions)

	doc := Document{Title: fmt.Sprintf("Round %s", strings.ToUpper(roundLabel))}
	for number := models.MinQuestionNumber; number <= models.MaxRegularQuestionNumber; number++ {
		for si, subject := range MainSubjectOrder {
			sequence := (number-1)*len(MainSubjectOrder) + si + 1
			var group Group
			if q := index[slotKey{subject, models.RoleTossup, number}]; q != nil {
				group.Blocks = append(group.Blocks, Block{sequence, q})
			}
			if q := index[slotKey{subject, models.RoleBonus, number}]; q != nil {
				group.Blocks = append(group.Blocks, Block{sequence, q})
			}
			doc.Groups = append(doc.Groups, group)
		}
	}
	return doc
}

// BuildReplacements lays out question numbers 6 and 7. Each occupied
// replacement slot restarts its numbering: the tossup prints as 1, the bonus
// as 2. Subjects without replacement content are left out entirely.
func BuildReplacements(questions []*models.Question, roundLabel string) Document {
	index := indexBySlot(questions)

	doc := Document{Title: fmt.Sprintf("Round %s Replacements", strings.ToUpper(roundLabel))}
	for _, subject := range MainSubjectOrder {
		for number := models.FirstReplacementNumber; number <= models.MaxQuestionNumber; number++ {
			tossup := index[slotKey{subject, models.RoleTossup, number}]
			bonus := index[slotKey{subject, models.RoleBonus, number}]
			if tossup == nil && bonus == nil {
				continue
			}
			var group Group
			if tossup != nil {
				group.Blocks = append(group.Blocks, Block{1, tossup})
			}
			if bonus != nil {
				group.Blocks = append(group.Blocks, Block{2, bonus})
			}
			doc.Groups = append(doc.Groups, group)
		}
	}
	return doc
}
