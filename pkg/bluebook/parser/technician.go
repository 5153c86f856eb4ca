package parser

import (
	"regexp"
	"strings"
)

var (
	techTagRe    = regexp.MustCompile(`(?i)^(.+?)\s*\((\d{1,2}:\d{2}\s?[AP]M)\)$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// isHeaderLike reports whether text is the tag column header
// ("Created By (At)" and its spacing/casing variants).
func isHeaderLike(text string) bool {
	compact := strings.ToLower(whitespaceRe.ReplaceAllString(text, ""))
	if !strings.HasPrefix(compact, "created") {
		return false
	}
	return strings.Contains(compact, "by(at)")
}

// ParseTechnician returns the technician name when value marks the start of a
// quote ("<name> (<H:MM AM|PM>)"). Inner whitespace runs in the name collapse
// to one space; the name's case is kept.
func ParseTechnician(value string) (string, bool) {
	text := strings.TrimSpace(value)
	if text == "" || isHeaderLike(text) {
		return "", false
	}

	m := techTagRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(m[1]), " ")
	if name == "" {
		return "", false
	}
	return name, true
}
