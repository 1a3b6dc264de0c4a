// Package core provides the domain types and money handling for the
// budgeting ledger.
//
// This file contains functions for parsing monetary amounts from strings
// and rendering integer cents back into a currency string.
package core

import (
	"strconv"
	"strings"
)

// ParseCents converts a decimal amount string to integer cents.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. The
// fractional part may have at most two digits; a single digit is
// right-padded with a zero, so "12.5" means 12.50, not 12.05. A missing
// fractional part means zero cents.
//
// Negative whole amounts ("-12", "-12.00") are accepted. A negative
// integer part combined with non-zero fractional digits is rejected:
// carrying the sign on the integer part only would silently turn
// "-12.50" into -11.50.
//
// Examples:
//
//	ParseCents("12.5")  -> 1250, nil
//	ParseCents("12,50") -> 1250, nil
//	ParseCents("12")    -> 1200, nil
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ".")+strings.Count(s, ",") > 1 {
		return 0, ErrInvalidAmount
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	var frac int64
	if fracPart != "" {
		if len(fracPart) > 2 {
			return 0, ErrInvalidAmount
		}
		// Right-pad a single digit: "5" is fifty cents.
		if len(fracPart) == 1 {
			fracPart += "0"
		}
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil || frac < 0 {
			return 0, ErrInvalidAmount
		}
		if frac != 0 && strings.HasPrefix(intPart, "-") {
			return 0, ErrInvalidAmount
		}
	}

	return whole*100 + frac, nil
}

// FormatCents renders cents as "{whole},{frac:02}{currency}".
//
// Whole and fractional parts come from Go's truncating division, so a
// negative amount yields a negative whole part and a remainder carrying
// the same sign.
func FormatCents(cents int64, currency string) string {
	return strconv.FormatInt(cents/100, 10) + "," + pad2(cents%100) + currency
}

func pad2(frac int64) string {
	if frac >= 0 && frac < 10 {
		return "0" + strconv.FormatInt(frac, 10)
	}
	return strconv.FormatInt(frac, 10)
}
