package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches an amount with optional thousands separators and up
// to two fraction digits.
const numberPattern = `((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{1,2})?)`

var (
	// "J13 - $133.65", "J13–133", "J13 —$5.5"
	codeAmountRe = regexp.MustCompile(`(?:^|[^A-Za-z0-9])([A-Z]\d{1,2})\s*[-\x{2013}\x{2014}]\s*\$?\s*` + numberPattern)
	codeOnlyRe   = regexp.MustCompile(`^[A-Z]\d{1,2}$`)
	// A digit run never directly follows a letter, so "F12" is not an amount.
	amountRe = regexp.MustCompile(`(?:^|[^A-Za-z0-9.,])\$?\s*` + numberPattern)
	fromToRe = regexp.MustCompile(`(?i)\bfrom\s*\$?\s*` + numberPattern + `\s*(?:to|\x{2192}|->)\s*\$?\s*` + numberPattern)
)

// Labor is a labor code and/or amount parsed from one cell.
type Labor struct {
	Code   string
	Amount *float64
}

// HasAmount reports whether an amount was resolved.
func (l Labor) HasAmount() bool {
	return l.Amount != nil
}

// ParseLabor extracts a labor code and amount from text. It tries, in order,
// "<code> - $<amount>", a bare code found in prices, and finally the last
// currency-like number in the text. Unparseable input yields the zero Labor.
func ParseLabor(text string, prices PriceTable) Labor {
	text = strings.TrimSpace(text)
	if text == "" {
		return Labor{}
	}

	if code, amount, ok := matchCodeAmount(text); ok {
		return Labor{Code: code, Amount: &amount}
	}

	// A bare code only counts when the sheet priced it somewhere.
	if codeOnlyRe.MatchString(text) {
		if amount, ok := prices[text]; ok {
			return Labor{Code: text, Amount: &amount}
		}
	}

	amounts := ParseAmounts(text)
	if len(amounts) == 0 {
		return Labor{}
	}
	last := amounts[len(amounts)-1]
	return Labor{Amount: &last}
}

// matchCodeAmount returns the first "<code> - <amount>" pair in text.
func matchCodeAmount(text string) (string, float64, bool) {
	for _, m := range codeAmountRe.FindAllStringSubmatch(text, -1) {
		if amount, ok := parseAmount(m[2]); ok {
			return m[1], amount, true
		}
	}
	return "", 0, false
}

// ParseAmounts returns every currency-like number in text, in order.
func ParseAmounts(text string) []float64 {
	var amounts []float64
	for _, m := range amountRe.FindAllStringSubmatch(text, -1) {
		if amount, ok := parseAmount(m[1]); ok {
			amounts = append(amounts, amount)
		}
	}
	return amounts
}

// ParseFromTo extracts the pair from "from <amt> to <amt>" (also "->" and "→").
func ParseFromTo(text string) (before, after float64, ok bool) {
	m := fromToRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	before, ok1 := parseAmount(m[1])
	after, ok2 := parseAmount(m[2])
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return before, after, true
}

func parseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
