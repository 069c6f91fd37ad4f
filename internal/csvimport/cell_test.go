package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeCellShortAnswer(t *testing.T) {
	cell, err := DecodeCell("What is gravity?\nAns: A force")
	require.NoError(t, err)

	assert.Equal(t, CellShortAnswer, cell.Kind)
	assert.Equal(t, "What is gravity?", cell.Question)
	assert.Equal(t, "A force", cell.Answer)
	assert.Empty(t, cell.Choices)
}

func TestDecodeCellStripsSurroundingQuotes(t *testing.T) {
	cell, err := DecodeCell("\"What is gravity?\nA force\"")
	require.NoError(t, err)
	assert.Equal(t, "What is gravity?", cell.Question)
	assert.Equal(t, "A force", cell.Answer)
}

func TestDecodeCellMultipleChoice(t *testing.T) {
	cell, err := DecodeCell("Which planet is largest?\nW) Mars\nX) Jupiter\nY) Venus\nZ) Neptune\nAns: X")
	require.NoError(t, err)

	assert.Equal(t, CellMultipleChoice, cell.Kind)
	assert.Equal(t, []string{"Mars", "Jupiter", "Venus", "Neptune"}, cell.Choices)
	assert.Equal(t, "X", cell.Answer)
}

func TestDecodeCellRankedShortAnswer(t *testing.T) {
	cell, err := DecodeCell("Rank by mass\n1) Moon\n2) Earth\n3) Sun\nMoon, Earth, Sun")
	require.NoError(t, err)

	assert.Equal(t, CellShortAnswerRanked, cell.Kind)
	assert.Equal(t, []string{"Moon", "Earth", "Sun"}, cell.Choices)
	assert.Equal(t, "Moon, Earth, Sun", cell.Answer)
}

func TestDecodeCellDropsMismatchedChoicePrefix(t *testing.T) {
	cell, err := DecodeCell("Which planet is largest?\nW) Mars\nJupiter\nY) Venus\nZ) Neptune\nAns: X")
	require.NoError(t, err)

	// The unprefixed line is dropped, the cell survives.
	assert.Equal(t, CellMultipleChoice, cell.Kind)
	assert.Equal(t, []string{"Mars", "Venus", "Neptune"}, cell.Choices)
}

func TestDecodeCellRejects(t *testing.T) {
	for name, raw := range map[string]string{
		"empty":        "",
		"one line":     "just a question",
		"three lines":  "q\na\nb",
		"seven lines":  "q\n1\n2\n3\n4\n5\n6",
		"empty answer": "What is gravity?\nAns:",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeCell(raw)
			assert.Error(t, err)
		})
	}
}

func TestDecodeCellIgnoresBlankLines(t *testing.T) {
	cell, err := DecodeCell("What is gravity?\n\n\nAns: A force\n")
	require.NoError(t, err)
	assert.Equal(t, CellShortAnswer, cell.Kind)
}
