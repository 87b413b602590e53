package answer

import "strings"

// buildPrompt embeds, in order, a fixed instruction, a bounded prefix of
// the document text, and the verbatim question.
func buildPrompt(docText, question string, budget int) string {
	var sb strings.Builder
	sb.WriteString("Answer this question based only on the document:\n\nDocument:\n")
	sb.WriteString(truncate(docText, budget))
	sb.WriteString("\n\nQuestion:\n")
	sb.WriteString(question)
	return sb.String()
}

// truncate returns the first budget characters of s. The cut is by rune
// count, never splitting a multi-byte sequence. No sentence-boundary
// awareness, no sliding window.
func truncate(s string, budget int) string {
	if budget <= 0 {
		return s
	}

	count := 0
	for i := range s {
		if count == budget {
			return s[:i]
		}
		count++
	}

	return s
}
