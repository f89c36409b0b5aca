package utils

import "github.com/microcosm-cc/bluemonday"

var (
	ugcPolicy   = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// Sanitize cleans user-generated HTML content to prevent XSS.
func Sanitize(input string) string {
	return ugcPolicy.Sanitize(input)
}

// SanitizePlain strips all markup, used for free-text fields that should never
// contain HTML (advice questions, AI responses rendered as text).
func SanitizePlain(input string) string {
	return plainPolicy.Sanitize(input)
}
