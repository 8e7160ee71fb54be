// Package normalize holds the small text normalizations applied before
// storage and comparison.
package normalize

import (
	"regexp"
	"strings"
)

var hashtagRe = regexp.MustCompile(`#(\w+)`)

// Email returns a normalized form of an email address suitable for
// storage and comparisons. Normalization currently trims surrounding
// whitespace and lower-cases the address.
func Email(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

// Content trims surrounding whitespace from user-written text (posts, messages).
func Content(s string) string {
	return strings.TrimSpace(s)
}

// Hashtags extracts every #word in text, in order of appearance and without
// the leading '#'. It returns nil when the text carries no hashtag so the
// post stores no tag list at all.
func Hashtags(text string) []string {
	matches := hashtagRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
