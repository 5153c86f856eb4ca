package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const threadedNotice = "[Threaded comment]\n\nYour version of Excel allows you to read this threaded comment; " +
	"however, any edits to it will get removed if the file is opened in a newer version of Excel. " +
	"Learn more: https://go.microsoft.com/fwlink/?linkid=870924\n\n"

func TestNoteText(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"plain note", "  from 50 to 75 ", "from 50 to 75"},
		{"threaded comment", threadedNotice + "Comment:\n    80", "80"},
		{"threaded comment with reply", threadedNotice + "Comment:\n    was 90\nReply:\n    ok", "was 90\nReply:\n    ok"},
		{"threaded notice without body", threadedNotice + "Comment:", ""},
		{"threaded notice without marker", threadedNotice, ""},
		{"marker in a plain note", "Comment: 80", "Comment: 80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NoteText(tt.raw))
		})
	}
}
