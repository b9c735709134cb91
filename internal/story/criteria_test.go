package story

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCriteria_BasicBullets(t *testing.T) {
	text := "Some intro.\n\nAcceptance Criteria:\n- A\n- B\n- C"
	assert.Equal(t, []string{"A", "B", "C"}, ExtractCriteria(text))
}

func TestExtractCriteria_HeaderVariants(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"plain", "Acceptance Criteria"},
		{"colon", "Acceptance Criteria:"},
		{"lowercase", "acceptance criteria:"},
		{"markdown heading", "## Acceptance Criteria"},
		{"short form", "Acceptance:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := tt.header + "\n- works\n- tested"
			assert.Equal(t, []string{"works", "tested"}, ExtractCriteria(text))
		})
	}
}

func TestExtractCriteria_MarkerVariants(t *testing.T) {
	text := "Acceptance Criteria:\n* star item\n• unicode bullet\n1. first numbered\n2) second numbered\na) lettered"
	assert.Equal(t, []string{
		"star item",
		"unicode bullet",
		"first numbered",
		"second numbered",
		"lettered",
	}, ExtractCriteria(text))
}

func TestExtractCriteria_StopsAtNextSection(t *testing.T) {
	text := "Acceptance Criteria:\n- A\n- B\nNotes:\n- not a criterion"
	assert.Equal(t, []string{"A", "B"}, ExtractCriteria(text))
}

func TestExtractCriteria_StopsAtBlankThenProse(t *testing.T) {
	text := "Acceptance Criteria:\n- A\n\nThis paragraph is unrelated prose\n- orphan bullet"
	assert.Equal(t, []string{"A"}, ExtractCriteria(text))
}

func TestExtractCriteria_BlankBetweenItemsIsTolerated(t *testing.T) {
	text := "Acceptance Criteria:\n- A\n\n- B"
	assert.Equal(t, []string{"A", "B"}, ExtractCriteria(text))
}

func TestExtractCriteria_NoHeader(t *testing.T) {
	assert.Nil(t, ExtractCriteria("Just a description.\n- with a list\n- but no header"))
	assert.Nil(t, ExtractCriteria(""))
}

func TestExtractCriteria_HeaderWithoutItems(t *testing.T) {
	assert.Empty(t, ExtractCriteria("Acceptance Criteria:\n\nNo list here, only prose."))
}

func TestFallbackCriteria(t *testing.T) {
	got := FallbackCriteria("Add login")
	require.Len(t, got, 3)
	assert.Equal(t, "Implement Add login", got[0])
	assert.Equal(t, "Add login is verified to work as expected", got[1])
	assert.Equal(t, "Add login does not introduce regressions", got[2])

	for _, c := range FallbackCriteria("") {
		assert.NotEmpty(t, c)
	}
}
