package typeset

import (
	"testing"

	"qbank/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(subject models.Subject, role models.QuestionRole, number int) *models.Question {
	return &models.Question{
		Subject:        subject,
		Round:          1,
		QuestionType:   models.TypeShortAnswer,
		QuestionRole:   role,
		QuestionNumber: number,
		Question:       "q",
		Answer:         "a",
	}
}

func TestBuildMainSequenceNumbering(t *testing.T) {
	// Biology is subject index 0, so its tossup at number 3 prints as
	// (3-1)*5 + 0 + 1 = 11.
	doc := BuildMain([]*models.Question{
		question(models.SubjectBiology, models.RoleTossup, 3),
	}, "rr1")

	var blocks []Block
	for _, g := range doc.Groups {
		blocks = append(blocks, g.Blocks...)
	}
	require.Len(t, blocks, 1)
	assert.Equal(t, 11, blocks[0].Sequence)
}

func TestBuildMainKeepsEmptyCells(t *testing.T) {
	doc := BuildMain(nil, "rr1")
	// 5 numbers x 5 subjects, every cell keeps its separator group.
	assert.Len(t, doc.Groups, 25)
	assert.True(t, doc.Empty())
}

func TestBuildMainPairsShareSequence(t *testing.T) {
	doc := BuildMain([]*models.Question{
		question(models.SubjectChemistry, models.RoleTossup, 1),
		question(models.SubjectChemistry, models.RoleBonus, 1),
	}, "rr1")

	var blocks []Block
	for _, g := range doc.Groups {
		blocks = append(blocks, g.Blocks...)
	}
	require.Len(t, blocks, 2)
	assert.Equal(t, 2, blocks[0].Sequence)
	assert.Equal(t, blocks[0].Sequence, blocks[1].Sequence)
	assert.Equal(t, models.RoleTossup, blocks[0].Question.QuestionRole)
	assert.Equal(t, models.RoleBonus, blocks[1].Question.QuestionRole)
}

func TestBuildMainIgnoresReplacements(t *testing.T) {
	doc := BuildMain([]*models.Question{
		question(models.SubjectBiology, models.RoleTossup, 6),
		question(models.SubjectBiology, models.RoleTossup, 7),
	}, "rr1")
	assert.True(t, doc.Empty())
}

func TestBuildReplacements(t *testing.T) {
	doc := BuildReplacements([]*models.Question{
		question(models.SubjectBiology, models.RoleTossup, 6),
		question(models.SubjectBiology, models.RoleBonus, 6),
		question(models.SubjectPhysics, models.RoleBonus, 7),
	}, "rr1")

	// Subjects without replacement content emit nothing.
	require.Len(t, doc.Groups, 2)

	bio := doc.Groups[0]
	require.Len(t, bio.Blocks, 2)
	assert.Equal(t, 1, bio.Blocks[0].Sequence)
	assert.Equal(t, 2, bio.Blocks[1].Sequence)

	phys := doc.Groups[1]
	require.Len(t, phys.Blocks, 1)
	assert.Equal(t, 2, phys.Blocks[0].Sequence)
	assert.Equal(t, 7, phys.Blocks[0].Question.QuestionNumber)
}

func TestBuildReplacementsKeepsSlotsSixAndSevenDistinct(t *testing.T) {
	doc := BuildReplacements([]*models.Question{
		question(models.SubjectMath, models.RoleTossup, 6),
		question(models.SubjectMath, models.RoleTossup, 7),
	}, "de3")

	require.Len(t, doc.Groups, 2)
	assert.Equal(t, 6, doc.Groups[0].Blocks[0].Question.QuestionNumber)
	assert.Equal(t, 7, doc.Groups[1].Blocks[0].Question.QuestionNumber)
}

func TestDocumentTitles(t *testing.T) {
	assert.Equal(t, "Round RR1", BuildMain(nil, "rr1").Title)
	assert.Equal(t, "Round F2 Replacements", BuildReplacements(nil, "f2").Title)
}
