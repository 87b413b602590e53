package answer

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
)

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		budget   int
		expected string
	}{
		{"over budget", "abcdefghij", 5, "abcde"},
		{"exactly budget", "abcde", 5, "abcde"},
		{"under budget", "abc", 5, "abc"},
		{"zero budget keeps all", "abc", 0, "abc"},
		{"multibyte runes", "日本語テキスト", 3, "日本語"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Equal(t, truncate(tc.input, tc.budget), tc.expected)
		})
	}
}

func TestBuildPromptOrder(t *testing.T) {
	prompt := buildPrompt("DOC-TEXT", "QUESTION-TEXT", 100)

	instructionAt := strings.Index(prompt, "Answer this question based only on the document")
	docAt := strings.Index(prompt, "DOC-TEXT")
	questionAt := strings.Index(prompt, "QUESTION-TEXT")

	if instructionAt < 0 || docAt < 0 || questionAt < 0 {
		t.Fatalf("prompt is missing a section: %q", prompt)
	}
	if !(instructionAt < docAt && docAt < questionAt) {
		t.Errorf("prompt sections out of order: %q", prompt)
	}
}
