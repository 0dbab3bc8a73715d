package shared

import (
	"strings"
	"unicode"
)

// Truncate cuts text to at most maxLen runes. No ellipsis; the result is
// guaranteed not to exceed maxLen.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return strings.TrimRightFunc(string(runes[:maxLen]), unicode.IsSpace)
}

// CollapseSpace trims text and folds any run of whitespace into a single
// space. Scraped HTML text tends to be full of newlines and indentation.
func CollapseSpace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
