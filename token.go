package pagelens

import (
	"math"
	"strings"
)

// EstimateTokens approximates the LLM token cost of text as
// ceil(max(words × 1.3, characters / 4)). The estimate is intended for
// comparative before/after cost reporting only and is never exact for any
// particular tokenizer.
func EstimateTokens(text string) int {
	words := float64(len(strings.Fields(text)))
	chars := float64(len(text))
	return int(math.Ceil(math.Max(words*1.3, chars/4)))
}
