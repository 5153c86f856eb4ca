package parser

import "strings"

const (
	threadedCommentPrefix = "[Threaded comment]"
	threadedCommentMarker = "Comment:"
)

// NoteText returns the user-written part of a cell note. Excel saves each
// threaded comment with a legacy note that starts with a fixed notice (and a
// help link whose query carries a number); only the text after the
// "Comment:" marker is kept for those.
func NoteText(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, threadedCommentPrefix) {
		return text
	}
	if _, body, ok := strings.Cut(text, threadedCommentMarker); ok {
		return strings.TrimSpace(body)
	}
	return ""
}
