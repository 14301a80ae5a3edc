package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for article form fields.
const (
	maxTitleLen   = 300
	maxExcerptLen = 1_000
	maxBodyLen    = 100_000
)

// validateArticle checks article form inputs and returns the first error found.
func validateArticle(title, excerpt, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	return ""
}
