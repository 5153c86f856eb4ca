package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestParseLabor(t *testing.T) {
	prices := PriceTable{"J13": 133.65}

	tests := []struct {
		input    string
		prices   PriceTable
		code     string
		expected *float64
	}{
		{"J13 - $133.65", nil, "J13", ptr(133.65)},
		{"J13-133", nil, "J13", ptr(133)},
		{"J13 – $1,200.5", nil, "J13", ptr(1200.5)},
		{"Brakes: B7 — $89.10 labor", nil, "B7", ptr(89.10)},
		{"J13", prices, "J13", ptr(133.65)},
		{"  J13 ", prices, "J13", ptr(133.65)},
		{"F12", nil, "", nil},
		{"F12", prices, "", nil},
		{"$42", nil, "", ptr(42)},
		{"$1,234.50", nil, "", ptr(1234.50)},
		{"was 10 now 20", nil, "", ptr(20)},
		{"F12 plus 30", nil, "", ptr(30)},
		{"133.65", nil, "", ptr(133.65)},
		{"", prices, "", nil},
		{"labor", prices, "", nil},
	}

	for _, tt := range tests {
		l := ParseLabor(tt.input, tt.prices)
		assert.Equal(t, tt.code, l.Code, "ParseLabor(%q) code", tt.input)
		if tt.expected == nil {
			assert.Nil(t, l.Amount, "ParseLabor(%q) amount", tt.input)
			continue
		}
		require.NotNil(t, l.Amount, "ParseLabor(%q) amount", tt.input)
		assert.InDelta(t, *tt.expected, *l.Amount, 1e-9, "ParseLabor(%q) amount", tt.input)
	}
}

func TestParseAmounts(t *testing.T) {
	tests := []struct {
		input    string
		expected []float64
	}{
		{"changed from $100 to $120", []float64{100, 120}},
		{"$10/$20", []float64{10, 20}},
		{"J13 ok", nil},
		{"A1 10.5", []float64{10.5}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseAmounts(tt.input), "ParseAmounts(%q)", tt.input)
	}
}

func TestParseFromTo(t *testing.T) {
	tests := []struct {
		input  string
		before float64
		after  float64
		ok     bool
	}{
		{"changed from $100 to $120", 100, 120, true},
		{"From 50 -> 75", 50, 75, true},
		{"from $80.00 → $64.50", 80, 64.5, true},
		{"FROM 1,000 TO 900", 1000, 900, true},
		{"to 75 from 50", 0, 0, false},
		{"lowered", 0, 0, false},
	}

	for _, tt := range tests {
		before, after, ok := ParseFromTo(tt.input)
		assert.Equal(t, tt.ok, ok, "ParseFromTo(%q)", tt.input)
		assert.Equal(t, tt.before, before, "ParseFromTo(%q) before", tt.input)
		assert.Equal(t, tt.after, after, "ParseFromTo(%q) after", tt.input)
	}
}
