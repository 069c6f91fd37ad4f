package typeset

import (
	"fmt"
	"strings"

	"qbank/internal/models"
)

const preamble = `\documentclass[12pt]{article}
\usepackage[margin=1in]{geometry}
\usepackage{graphicx}
\usepackage{amsmath}
\newcommand{\pg}[1]{[\textit{#1}]}
\begin{document}
`

const separator = "\\par\\noindent\\rule{\\textwidth}{0.4pt}\n\n"

// Render turns a laid-out document into LaTeX source. Layout decisions were
// all made by the builder; this pass only formats and escapes.
func Render(doc Document) string {
	var b strings.Builder
	b.WriteString(preamble)

	b.WriteString("\\begin{center}\n")
	b.WriteString("\\includegraphics[width=2.5cm]{logo.png}\\\\[0.5em]\n")
	fmt.Fprintf(&b, "{\\Large \\textbf{%s}}\n", Escape(doc.Title))
	b.WriteString("\\end{center}\n\n")

	for _, group := range doc.Groups {
		for _, block := range group.Blocks {
			renderBlock(&b, block)
		}
		b.WriteString(separator)
	}

	b.WriteString("\\end{document}\n")
	return b.String()
}

func renderBlock(b *strings.Builder, block Block) {
	q := block.Question
	fmt.Fprintf(b, "\\noindent\\textbf{%d) %s} \\hspace{1em} \\textbf{%s} \\hspace{1em} \\textit{%s}\\\\\n",
		block.Sequence, strings.ToUpper(string(q.QuestionRole)), q.Subject.Code(), q.QuestionType)
	b.WriteString(Escape(q.Question))
	b.WriteString("\n")

	switch q.QuestionType {
	case models.TypeMultipleChoice:
		// Always four lettered items; a missing choice prints blank.
		for i, letter := range models.ChoiceLetters {
			choice := ""
			if i < len(q.Choices) {
				choice = q.Choices[i]
			}
			fmt.Fprintf(b, "\\par %s) %s\n", letter, Escape(choice))
		}
	case models.TypeShortAnswer:
		for i, choice := range q.Choices {
			fmt.Fprintf(b, "\\par %d) %s\n", i+1, Escape(choice))
		}
	}

	fmt.Fprintf(b, "\\par\\textbf{ANSWER:} %s\n\n", Escape(q.Answer))
}
