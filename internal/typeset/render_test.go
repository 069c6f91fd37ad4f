package typeset

import (
	"strings"
	"testing"

	"qbank/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMultipleChoicePadsToFourChoices(t *testing.T) {
	q := question(models.SubjectChemistry, models.RoleTossup, 1)
	q.QuestionType = models.TypeMultipleChoice
	q.Choices = []string{"Helium", "Neon"}

	out := Render(Document{Title: "Round RR1", Groups: []Group{{Blocks: []Block{{1, q}}}}})

	assert.Contains(t, out, "\\par W) Helium\n")
	assert.Contains(t, out, "\\par X) Neon\n")
	assert.Contains(t, out, "\\par Y) \n")
	assert.Contains(t, out, "\\par Z) \n")
}

func TestRenderShortAnswerRankedChoices(t *testing.T) {
	q := question(models.SubjectMath, models.RoleBonus, 2)
	q.Choices = []string{"first", "second", "third"}

	out := Render(Document{Groups: []Group{{Blocks: []Block{{7, q}}}}})

	assert.Contains(t, out, "\\par 1) first\n")
	assert.Contains(t, out, "\\par 3) third\n")
	assert.NotContains(t, out, "\\par 4)")
}

func TestRenderBlockHeaderLine(t *testing.T) {
	q := question(models.SubjectEarthSpace, models.RoleTossup, 4)
	out := Render(Document{Groups: []Group{{Blocks: []Block{{17, q}}}}})

	assert.Contains(t, out, "\\textbf{17) TOSSUP}")
	assert.Contains(t, out, "\\textbf{ES}")
	assert.Contains(t, out, "\\textit{Short Answer}")
	assert.Contains(t, out, "\\textbf{ANSWER:} a")
}

func TestRenderEscapesQuestionText(t *testing.T) {
	q := question(models.SubjectPhysics, models.RoleTossup, 1)
	q.Question = "50% energy is $E=mc^2$"
	q.Answer = "100%"

	out := Render(Document{Groups: []Group{{Blocks: []Block{{1, q}}}}})

	assert.Contains(t, out, `50\% energy is $E=mc^2$`)
	assert.Contains(t, out, `\textbf{ANSWER:} 100\%`)
}

func TestRenderSeparatorPerGroup(t *testing.T) {
	doc := BuildMain(nil, "rr1")
	out := Render(doc)

	require.True(t, doc.Empty())
	// Empty cells still print their separators so the page rhythm holds.
	assert.Equal(t, 25, strings.Count(out, separator))
}

func TestRenderDocumentSkeleton(t *testing.T) {
	out := Render(Document{Title: "Round RR1"})

	assert.True(t, strings.HasPrefix(out, "\\documentclass"))
	assert.Contains(t, out, "\\newcommand{\\pg}[1]")
	assert.Contains(t, out, "logo.png")
	assert.Contains(t, out, "Round RR1")
	assert.True(t, strings.HasSuffix(out, "\\end{document}\n"))
}
