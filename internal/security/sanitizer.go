package security

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.StrictPolicy()

// SanitizeString trims whitespace and removes null bytes from free-form input.
func SanitizeString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// SanitizeHTML removes all HTML tags.
func SanitizeHTML(input string) string {
	return htmlPolicy.Sanitize(input)
}

// SanitizeUserContent is applied to user-authored text (comment content,
// display names) before it is stored.
func SanitizeUserContent(input string) string {
	return SanitizeString(SanitizeHTML(input))
}
