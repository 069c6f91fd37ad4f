package csvimport

import (
	"testing"

	"qbank/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSheet = "Round,T1 Question,Repl Tossup,Repl Bonus\n" +
	"RR1,\"What is gravity?\nAns: A force\",,\n"

func TestParseSingleDraft(t *testing.T) {
	drafts, err := Parse(minimalSheet, models.SubjectPhysics)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	draft := drafts[0]
	assert.Equal(t, models.SubjectPhysics, draft.Subject)
	assert.Equal(t, 1, draft.Round)
	assert.Equal(t, models.TypeShortAnswer, draft.QuestionType)
	assert.Equal(t, models.RoleTossup, draft.QuestionRole)
	assert.Equal(t, 1, draft.QuestionNumber)
	assert.Equal(t, "What is gravity?", draft.Question.Question)
	assert.Equal(t, "A force", draft.Answer)
	assert.Empty(t, draft.Choices)
	assert.Equal(t, "T1 Question", draft.Header)
}

func TestParseBonusHeader(t *testing.T) {
	sheet := "Round,B3 Question,Repl Tossup,Repl Bonus\n" +
		"DE2,\"Name the gas\nAns: Oxygen\",,\n"

	drafts, err := Parse(sheet, models.SubjectChemistry)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, models.RoleBonus, drafts[0].QuestionRole)
	assert.Equal(t, 3, drafts[0].QuestionNumber)
	assert.Equal(t, 7, drafts[0].Round)
}

func TestParseUnknownRoundCodeSkipsRowOnly(t *testing.T) {
	sheet := "Round,T1 Question,Repl Tossup,Repl Bonus\n" +
		"QF9,\"Bad row\nAns: nope\",,\n" +
		"rr2,\"Good row?\nAns: yes\",,\n"

	drafts, err := Parse(sheet, models.SubjectBiology)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, 2, drafts[0].Round)
}

func TestParseReplacementColumns(t *testing.T) {
	sheet := "Round,T1 Question,Repl Tossup,Repl Bonus\n" +
		"F1,,\"Spare tossup?\nAns: spare\",\"Spare bonus?\nAns: extra\"\n"

	drafts, err := Parse(sheet, models.SubjectMath)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Equal(t, models.RoleTossup, drafts[0].QuestionRole)
	assert.Equal(t, models.FirstReplacementNumber, drafts[0].QuestionNumber)
	assert.Equal(t, models.RoleBonus, drafts[1].QuestionRole)
	assert.Equal(t, models.FirstReplacementNumber, drafts[1].QuestionNumber)
	assert.Equal(t, 13, drafts[0].Round)
}

func TestParseSkipsNonMatchingHeaders(t *testing.T) {
	sheet := "Round,Notes,T2 Question,Repl Tossup,Repl Bonus\n" +
		"rr1,\"stray\ncell\",\"Real question?\nAns: real\",,\n"

	drafts, err := Parse(sheet, models.SubjectEnergy)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, 2, drafts[0].QuestionNumber)
}

func TestParseSkipsUndecodableCells(t *testing.T) {
	sheet := "Round,T1 Question,T2 Question,Repl Tossup,Repl Bonus\n" +
		"rr1,only one line,\"Fine question?\nAns: fine\",,\n"

	drafts, err := Parse(sheet, models.SubjectBiology)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Fine question?", drafts[0].Question.Question)
}

func TestParseRejectsHeaderOnly(t *testing.T) {
	_, err := Parse("Round,T1 Question,Repl Tossup,Repl Bonus\n", models.SubjectPhysics)
	assert.Error(t, err)

	_, err = Parse("", models.SubjectPhysics)
	assert.Error(t, err)
}

func TestPreviewTruncates(t *testing.T) {
	sheet := "Round,T1 Question,B1 Question,T2 Question,B2 Question,Repl Tossup,Repl Bonus\n" +
		"rr1,\"Q1?\nAns: a1\",\"Q2?\nAns: a2\",\"Q3?\nAns: a3\",\"Q4?\nAns: a4\",\"Spare?\nAns: s\",\n" +
		"rr2,\"Later row?\nAns: ignored\",,,,,\n"

	drafts, err := Preview(sheet)
	require.NoError(t, err)
	// 3 regular drafts plus the replacement tossup, first data row only.
	require.Len(t, drafts, 4)

	assert.Equal(t, "Q1?", drafts[0].Question.Question)
	assert.Equal(t, "Q3?", drafts[2].Question.Question)
	assert.Equal(t, models.FirstReplacementNumber, drafts[3].QuestionNumber)
	for _, draft := range drafts {
		assert.Equal(t, 1, draft.Round)
		assert.NotEmpty(t, draft.Header)
	}
}

func TestPreviewUnknownRoundCode(t *testing.T) {
	sheet := "Round,T1 Question,Repl Tossup,Repl Bonus\n" +
		"nope,\"Q?\nAns: a\",,\n"

	drafts, err := Preview(sheet)
	require.NoError(t, err)
	assert.Empty(t, drafts)
}
