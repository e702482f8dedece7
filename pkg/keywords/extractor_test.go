package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var dictionary = []Entry{
	{Keyword: "Senate", Priority: "high"},
	{Keyword: "Congress", Priority: "High"},
	{Keyword: "filibuster", Priority: "medium"},
	{Keyword: "Test Act", Priority: "high"},
}

func TestExtractMatchesTier(t *testing.T) {
	text := "The Senate passed the bill after Congress debated a filibuster."

	high := Extract(text, dictionary, "high", "")
	assert.ElementsMatch(t, []string{"Senate", "Congress"}, high)

	medium := Extract(text, dictionary, "medium", "")
	assert.Equal(t, []string{"filibuster"}, medium)

	low := Extract(text, dictionary, "low", "")
	assert.Empty(t, low)
}

func TestExtractCaseInsensitive(t *testing.T) {
	matches := Extract("the SENATE convened", dictionary, "high", "")
	assert.Equal(t, []string{"Senate"}, matches)
}

func TestExtractExcludesOwnName(t *testing.T) {
	text := "The Test Act amended Senate procedure."

	matches := Extract(text, dictionary, "high", "Test Act")
	assert.NotContains(t, matches, "Test Act")
	assert.Contains(t, matches, "Senate")

	// Same text without the exclusion does match.
	matches = Extract(text, dictionary, "high", "Other Term")
	assert.Contains(t, matches, "Test Act")
}

func TestJoinDeduplicates(t *testing.T) {
	text := "Senate rules, Senate votes, Senate floor."

	matches := Extract(text, dictionary, "high", "")
	matches = append(matches, Extract(text, dictionary, "high", "")...)
	matches = append(matches, Extract(text, dictionary, "high", "")...)

	assert.Equal(t, "Senate", Join(matches))
}

func TestJoinOrdersAndJoins(t *testing.T) {
	assert.Equal(t, "Congress, Senate", Join([]string{"Senate", "Congress", "Senate"}))
	assert.Equal(t, "", Join(nil))
}
