package csvimport

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"qbank/internal/models"
)

// CellKind tags the shape a spreadsheet cell decoded into.
type CellKind int

const (
	CellShortAnswer CellKind = iota // question + answer only
	CellShortAnswerRanked          // question + 3 ranked options + answer
	CellMultipleChoice             // question + W/X/Y/Z choices + answer
)

// Cell is a decoded spreadsheet cell, not yet bound to a grid slot.
type Cell struct {
	Kind     CellKind
	Question string
	Answer   string
	Choices  []string
}

func (k CellKind) QuestionType() models.QuestionType {
	if k == CellMultipleChoice {
		return models.TypeMultipleChoice
	}
	return models.TypeShortAnswer
}

var ansPrefix = regexp.MustCompile(`(?i)^ans:\s*`)

// DecodeCell turns raw cell text into a Cell. The line count decides the
// variant: 2 lines is a plain short answer, 5 is a short answer with ranked
// options, 6 is multiple choice. Anything else is rejected.
func DecodeCell(raw string) (*Cell, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) && len(text) >= 2 {
		text = text[1 : len(text)-1]
	}

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	var cell Cell
	switch len(lines) {
	case 2:
		cell = Cell{
			Kind:     CellShortAnswer,
			Question: lines[0],
			Answer:   stripAnswerPrefix(lines[1]),
		}
	case 5:
		cell = Cell{
			Kind:     CellShortAnswerRanked,
			Question: lines[0],
			Choices:  collectChoices(lines[1:4], []string{"1)", "2)", "3)"}),
			Answer:   stripAnswerPrefix(lines[4]),
		}
	case 6:
		cell = Cell{
			Kind:     CellMultipleChoice,
			Question: lines[0],
			Choices:  collectChoices(lines[1:5], []string{"W)", "X)", "Y)", "Z)"}),
			Answer:   stripAnswerPrefix(lines[5]),
		}
	default:
		return nil, fmt.Errorf("unsupported cell shape: %d non-empty lines", len(lines))
	}

	if cell.Question == "" {
		return nil, fmt.Errorf("empty question")
	}
	if cell.Answer == "" {
		return nil, fmt.Errorf("empty answer")
	}
	return &cell, nil
}

func stripAnswerPrefix(line string) string {
	return strings.TrimSpace(ansPrefix.ReplaceAllString(line, ""))
}

// collectChoices strips the expected prefix from each choice line. A line
// with the wrong prefix is dropped from the result, not fatal to the cell.
func collectChoices(lines []string, prefixes []string) []string {
	choices := make([]string, 0, len(lines))
	for i, line := range lines {
		if !strings.HasPrefix(line, prefixes[i]) {
			log.Printf("csvimport: choice line %q does not start with %q, dropping", line, prefixes[i])
			continue
		}
		choices = append(choices, strings.TrimSpace(line[len(prefixes[i]):]))
	}
	return choices
}
