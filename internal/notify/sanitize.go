package notify

import (
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Sanitize drops markup spans and escapes what is left so the alert channel
// never tries to parse the text as HTML.
func Sanitize(text string) string {
	text = tagPattern.ReplaceAllString(text, "")
	// & must go first or the entities below would be escaped again.
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}
