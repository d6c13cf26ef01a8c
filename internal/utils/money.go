package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatEuro renders an amount the way lists and confirmations display it.
func FormatEuro(amount float64) string {
	return FormatMoney(amount) + "€"
}

// ParseAmount parses a form amount field, tolerating a comma decimal
// separator and surrounding whitespace.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	return strconv.ParseFloat(s, 64)
}
