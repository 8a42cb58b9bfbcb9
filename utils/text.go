package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\+?\(?[0-9][0-9()\-. ]{6,}[0-9]`)
)

// CleanExtractedText normalizes raw OCR output: trims each line,
// collapses runs of blank lines and strips surrounding whitespace.
func CleanExtractedText(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var out []string
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}

// SniffEmail returns the first email-looking token in the text, or ""
func SniffEmail(text string) string {
	return emailRe.FindString(text)
}

// SniffPhone returns the first phone-looking token in the text, or "".
// OCR output is noisy, so this only looks for digit runs with common
// separators, at least 8 characters long.
func SniffPhone(text string) string {
	return strings.TrimSpace(phoneRe.FindString(text))
}
