package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarySelectsByCategory(t *testing.T) {
	tests := []struct {
		termType string
		fragment string
	}{
		{TypeCountries, "economic importance"},
		{TypeCities, "global significance"},
		{TypeScientists, "accomplishments"},
		{TypeMilitaryConflicts, "key events and major players"},
		{TypePerson, "political career"},
		{TypePoliticalEvents, "key issues and outcomes"},
		{TypeUSLaws, "key provisions and impact"},
		{"something else", "AP Style"},
	}

	for _, tt := range tests {
		t.Run(tt.termType, func(t *testing.T) {
			prompt := Summary("Test Act", tt.termType, "congress, law")
			assert.Contains(t, prompt, "Test Act")
			assert.Contains(t, prompt, tt.fragment)
			assert.True(t, strings.HasSuffix(prompt, "Try to include these words: congress, law."))
		})
	}
}

func TestFAQNamesSeparators(t *testing.T) {
	prompt := FAQ("Test Act")
	assert.Contains(t, prompt, "Frequently Asked Questions about the Test Act")
	assert.Contains(t, prompt, `"///"`)
	assert.Contains(t, prompt, "~")
	assert.Contains(t, prompt, `"*"`)
}

func TestReplacementFAQEmbedsExisting(t *testing.T) {
	prompt := ReplacementFAQ("What is it?~A law.")
	assert.Contains(t, prompt, "What is it?~A law.")
	assert.Contains(t, prompt, "'@'")
}
