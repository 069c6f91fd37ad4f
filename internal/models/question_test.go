package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() *Question {
	return &Question{
		Subject:        SubjectPhysics,
		Round:          1,
		QuestionType:   TypeShortAnswer,
		QuestionRole:   RoleTossup,
		QuestionNumber: 1,
		Question:       "What is gravity?",
		Answer:         "A force",
	}
}

func TestValidateAccepts(t *testing.T) {
	require.NoError(t, validDraft().Validate())

	q := validDraft()
	q.QuestionNumber = 7
	q.Round = 14
	q.QuestionRole = RoleBonus
	q.QuestionType = TypeMultipleChoice
	q.Subject = SubjectEarthSpace
	require.NoError(t, q.Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Question){
		"bad subject":     func(q *Question) { q.Subject = "Geology" },
		"zero round":      func(q *Question) { q.Round = 0 },
		"bad type":        func(q *Question) { q.QuestionType = "True/False" },
		"bad role":        func(q *Question) { q.QuestionRole = "Lightning" },
		"number too low":  func(q *Question) { q.QuestionNumber = 0 },
		"number too high": func(q *Question) { q.QuestionNumber = 8 },
		"blank question":  func(q *Question) { q.Question = "   " },
		"blank answer":    func(q *Question) { q.Answer = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			q := validDraft()
			mutate(q)
			assert.Error(t, q.Validate())
		})
	}
}

func TestRoundFromCode(t *testing.T) {
	for code, want := range map[string]int{
		"rr1": 1, "RR5": 5, "de1": 6, "De7": 12, "f1": 13, " f2 ": 14,
	} {
		round, ok := RoundFromCode(code)
		require.True(t, ok, code)
		assert.Equal(t, want, round, code)
	}

	_, ok := RoundFromCode("qf1")
	assert.False(t, ok)
}

func TestSubjectCode(t *testing.T) {
	assert.Equal(t, "BIO", SubjectBiology.Code())
	assert.Equal(t, "ES", SubjectEarthSpace.Code())
}
