package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTechnician(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"Jane Doe (5:07 PM)", "Jane Doe", true},
		{"JANE DOE (05:07PM)", "JANE DOE", true},
		{"  Jane   Doe\t(5:07 pm) ", "Jane Doe", true},
		{"Mary-Ann O'Neil (12:30 am)", "Mary-Ann O'Neil", true},
		{"Jane Doe(11:59AM)", "Jane Doe", true},
		{"Jane Doe", "", false},
		{"Jane Doe (5:7 PM)", "", false},
		{"Jane Doe (5:07)", "", false},
		{"(5:07 PM)", "", false},
		{"", "", false},
		{"Created By (At)", "", false},
		{"Created By (At) (5:07 PM)", "", false},
		{"created  by (at) (10:00 AM)", "", false},
		{"CREATED%sBY(AT) (10:00 AM)", "", false},
	}

	for _, tt := range tests {
		name, ok := ParseTechnician(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseTechnician(%q) match", tt.input)
		assert.Equal(t, tt.expected, name, "ParseTechnician(%q) name", tt.input)
	}
}
