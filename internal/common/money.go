// Package common — money.go parses and formats money tokens.
// Amounts are plain integers (VND has no minor unit in practice), and the
// operator types them in shorthand: "100k" = 100000, "0.5k" = 500,
// "1,000" = 1000. The same parser handles amounts embedded in compound
// tokens like "hopqua100k".
package common

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountPattern must match the WHOLE token: digits, optional decimal part,
// optional trailing "k" multiplier. Anything else is rejected.
var amountPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(k?)$`)

// ParseAmount converts a free-text money token into an integer amount.
//
// Rules:
//   - trim and lower-case
//   - thousands-separator commas are stripped ("1,000" → 1000)
//   - a trailing "k" multiplies by 1000 ("57k" → 57000, "0.5k" → 500)
//   - the result is rounded to the nearest integer
//
// Returns ErrInvalidAmount for anything that does not fully match.
func ParseAmount(token string) (int64, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	token = strings.ReplaceAll(token, ",", "")
	if token == "" {
		return 0, ErrInvalidAmount
	}

	m := amountPattern.FindStringSubmatch(token)
	if m == nil {
		return 0, ErrInvalidAmount
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if m[2] == "k" {
		value *= 1000
	}
	return int64(math.Round(value)), nil
}

// FormatAmount renders an amount with comma thousands separators,
// the way the operator reads money: 60000 → "60,000", -15000 → "-15,000".
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var sb strings.Builder
	sb.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	return sb.String()
}

// FormatSigned is FormatAmount with an explicit "+" for non-negative
// amounts, used in ledger and reply lines.
func FormatSigned(amount int64) string {
	if amount >= 0 {
		return "+" + FormatAmount(amount)
	}
	return FormatAmount(amount)
}
