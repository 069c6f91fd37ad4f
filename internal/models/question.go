package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/uptrace/bun"
)

type Subject string

const (
	SubjectPhysics        Subject = "Physics"
	SubjectChemistry      Subject = "Chemistry"
	SubjectBiology        Subject = "Biology"
	SubjectEarthSpace     Subject = "Earth & Space"
	SubjectEnergy         Subject = "Energy"
	SubjectMath           Subject = "Math"
	SubjectGeneralScience Subject = "General Science"
)

func (s Subject) Valid() bool {
	switch s {
	case SubjectPhysics, SubjectChemistry, SubjectBiology, SubjectEarthSpace,
		SubjectEnergy, SubjectMath, SubjectGeneralScience:
		return true
	default:
		return false
	}
}

// Code is the short subject label printed on typeset documents.
func (s Subject) Code() string {
	switch s {
	case SubjectPhysics:
		return "PHYS"
	case SubjectChemistry:
		return "CHEM"
	case SubjectBiology:
		return "BIO"
	case SubjectEarthSpace:
		return "ES"
	case SubjectEnergy:
		return "EN"
	case SubjectMath:
		return "MATH"
	case SubjectGeneralScience:
		return "GS"
	default:
		return string(s)
	}
}

type QuestionType string

const (
	TypeMultipleChoice QuestionType = "Multiple Choice"
	TypeShortAnswer    QuestionType = "Short Answer"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeShortAnswer:
		return true
	default:
		return false
	}
}

type QuestionRole string

const (
	RoleTossup QuestionRole = "Tossup"
	RoleBonus  QuestionRole = "Bonus"
)

func (r QuestionRole) Valid() bool {
	switch r {
	case RoleTossup, RoleBonus:
		return true
	default:
		return false
	}
}

// Choice letters for multiple-choice questions, in rendering order.
var ChoiceLetters = [4]string{"W", "X", "Y", "Z"}

const (
	// Regular grid slots are 1-5, replacements 6-7.
	MinQuestionNumber        = 1
	MaxRegularQuestionNumber = 5
	FirstReplacementNumber   = 6
	MaxQuestionNumber        = 7
)

// db
type Question struct {
	bun.BaseModel  `bun:"table:question"`
	ID             string       `bun:"id,pk" json:"id"`
	Subject        Subject      `bun:"subject" json:"subject"`
	Round          int          `bun:"round" json:"round"`
	QuestionType   QuestionType `bun:"question_type" json:"questionType"`
	QuestionRole   QuestionRole `bun:"question_role" json:"questionRole"`
	QuestionNumber int          `bun:"question_number" json:"questionNumber"`
	Question       string       `bun:"question" json:"question"`
	Answer         string       `bun:"answer" json:"answer"`
	Choices        []string     `bun:"choices,type:jsonb" json:"choices"`
	CreatedAt      time.Time    `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt      time.Time    `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updatedAt"`
}

// Slot is the grid position a question occupies within a tournament.
type Slot struct {
	Subject Subject
	Round   int
	Role    QuestionRole
	Number  int
}

func (q *Question) Slot() Slot {
	return Slot{q.Subject, q.Round, q.QuestionRole, q.QuestionNumber}
}

// Validate runs the same checks for manual entry, edits and CSV drafts.
func (q *Question) Validate() error {
	if !q.Subject.Valid() {
		return errorx.Wrap(fmt.Errorf("invalid subject %q", q.Subject), errorx.Validation)
	}
	if q.Round < 1 {
		return errorx.Wrap(fmt.Errorf("round must be >= 1, got %d", q.Round), errorx.Validation)
	}
	if !q.QuestionType.Valid() {
		return errorx.Wrap(fmt.Errorf("invalid question type %q", q.QuestionType), errorx.Validation)
	}
	if !q.QuestionRole.Valid() {
		return errorx.Wrap(fmt.Errorf("invalid question role %q", q.QuestionRole), errorx.Validation)
	}
	if q.QuestionNumber < MinQuestionNumber || q.QuestionNumber > MaxQuestionNumber {
		return errorx.Wrap(fmt.Errorf("question number must be within [1,7], got %d", q.QuestionNumber), errorx.Validation)
	}
	if strings.TrimSpace(q.Question) == "" {
		return errorx.Wrap(fmt.Errorf("question text is required"), errorx.Validation)
	}
	if strings.TrimSpace(q.Answer) == "" {
		return errorx.Wrap(fmt.Errorf("answer is required"), errorx.Validation)
	}
	return nil
}
