package ui

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every HTML tag from server-provided text
var textPolicy = bluemonday.StrictPolicy()

// markupPattern matches an HTML tag or comment. Anything else in angle
// brackets, such as <hello@phya.co.za>, is text.
var markupPattern = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9-]*(?:\s[^<>]*)?/?>|<!--[\s\S]*?-->`)

// SanitizeMessage makes server-provided text safe to print on a terminal.
// Markup is removed, entities are decoded back to plain characters, and
// control characters (including escape sequences) are dropped. Angle
// brackets that do not form a tag are kept as written.
func SanitizeMessage(s string) string {
	plain := html.UnescapeString(textPolicy.Sanitize(escapeStrayBrackets(s)))
	plain = strings.Map(func(r rune) rune {
		if r == '\n' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, plain)
	return strings.TrimSpace(plain)
}

// escapeStrayBrackets entity-encodes every '<' that does not open a tag,
// so the sanitiser treats it as text instead of dropping what follows
func escapeStrayBrackets(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	tags := markupPattern.FindAllStringIndex(s, -1)
	var b strings.Builder
	b.Grow(len(s))

	last := 0
	for _, tag := range tags {
		b.WriteString(strings.ReplaceAll(s[last:tag[0]], "<", "&lt;"))
		b.WriteString(s[tag[0]:tag[1]])
		last = tag[1]
	}
	b.WriteString(strings.ReplaceAll(s[last:], "<", "&lt;"))
	return b.String()
}
