package typeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapePlainText(t *testing.T) {
	assert.Equal(t, `50\% of samples`, Escape(`50% of samples`))
	assert.Equal(t, `A \& B \# C`, Escape(`A & B # C`))
	assert.Equal(t, `H\_2O \{aq\}`, Escape(`H_2O {aq}`))
	assert.Equal(t, `x\^{}2 \~{}5`, Escape(`x^2 ~5`))
	assert.Equal(t, `a\textbackslash{}b`, Escape(`a\b`))
}

func TestEscapeMathSpanPassesThrough(t *testing.T) {
	got := Escape(`50% energy is $E=mc^2$`)
	assert.Equal(t, `50\% energy is $E=mc^2$`, got)
}

func TestEscapeEscapedDollarDoesNotToggle(t *testing.T) {
	// \$ stays verbatim and the % after it is still in a plain span.
	assert.Equal(t, `costs \$5, 10\%`, Escape(`costs \$5, 10%`))
}

func TestEscapeAlternatingSpans(t *testing.T) {
	got := Escape(`a_1 $x_1$ b_2 $y_2$ c%`)
	assert.Equal(t, `a\_1 $x_1$ b\_2 $y_2$ c\%`, got)
}

func TestEscapePronunciationGuide(t *testing.T) {
	got := Escape(`Coriolis [kawr-ee-OH-lis] effect`)
	assert.Equal(t, `Coriolis \pg{kawr-ee-OH-lis} effect`, got)
}

func TestEscapeBracketsInsideMathSurvive(t *testing.T) {
	assert.Equal(t, `$a[0] + b[1]$`, Escape(`$a[0] + b[1]$`))
}
