// Package textfmt provides the text formatting primitives shared by every
// document transformer: number-to-words conversion on the Indian numbering
// scale and the two prescribed date formats used in regulatory filings.
//
// All functions are pure and total over their stated domains; malformed input
// degrades to a fixed placeholder string rather than an error.  This is a hard
// requirement of the document layer: a half-filled record must still produce
// a renderable document.
package textfmt

import "strings"

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

// Indian numbering scale boundaries.
const (
	hundred  = 100
	thousand = 1000
	lakh     = 100000
	crore    = 10000000
)

// twoDigits converts 0 < n < 100 to words.
func twoDigits(n int64) string {
	if n < 20 {
		return onesWords[n]
	}
	t := tensWords[n/10]
	if n%10 == 0 {
		return t
	}
	return t + " " + onesWords[n%10]
}

// threeDigits converts 0 < n < 1000 to words.
func threeDigits(n int64) string {
	if n < hundred {
		return twoDigits(n)
	}
	h := onesWords[n/hundred] + " Hundred"
	if n%hundred == 0 {
		return h
	}
	return h + " " + twoDigits(n%hundred)
}

// NumberToWords converts a non-negative integer to English words using the
// Indian grouping (Hundred, Thousand, Lakh = 10^5, Crore = 10^7).  Amounts of
// one crore and above recurse on the crore count, so arbitrarily large values
// such as fee totals beyond 10^9 remain representable:
//
//	NumberToWords(0)         = "Zero"
//	NumberToWords(100000)    = "One Lakh"
//	NumberToWords(125000000) = "Twelve Crore Fifty Lakh"
//
// Negative input is treated as its absolute value prefixed with "Minus"; the
// fee engine never produces negatives, but the converter stays total.
func NumberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + NumberToWords(-n)
	}

	var parts []string
	if n >= crore {
		parts = append(parts, NumberToWords(n/crore)+" Crore")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, twoDigits(n/lakh)+" Lakh")
		n %= lakh
	}
	if n >= thousand {
		parts = append(parts, twoDigits(n/thousand)+" Thousand")
		n %= thousand
	}
	if n > 0 {
		parts = append(parts, threeDigits(n))
	}
	return strings.Join(parts, " ")
}

// RupeesInWords renders a fee amount the way the statutory forms expect it,
// e.g. "Rupees Fifty Four Thousand Four Hundred Only".
func RupeesInWords(amount int64) string {
	return "Rupees " + NumberToWords(amount) + " Only"
}
