package textfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{9, "Nine"},
		{10, "Ten"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{21, "Twenty One"},
		{99, "Ninety Nine"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1600, "One Thousand Six Hundred"},
		{20000, "Twenty Thousand"},
		{54400, "Fifty Four Thousand Four Hundred"},
		{99999, "Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{100000, "One Lakh"},
		{120000, "One Lakh Twenty Thousand"},
		{9999999, "Ninety Nine Lakh Ninety Nine Thousand Nine Hundred Ninety Nine"},
		{10000000, "One Crore"},
		{12500000, "One Crore Twenty Five Lakh"},
		{125000000, "Twelve Crore Fifty Lakh"},
		{1000000000, "One Hundred Crore"},
		{10000000000, "One Thousand Crore"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NumberToWords(tc.n), "n=%d", tc.n)
	}
}

func TestNumberToWordsNegative(t *testing.T) {
	assert.Equal(t, "Minus Forty Two", NumberToWords(-42))
}

func TestRupeesInWords(t *testing.T) {
	assert.Equal(t, "Rupees Fifty Four Thousand Four Hundred Only", RupeesInWords(54400))
	assert.Equal(t, "Rupees Zero Only", RupeesInWords(0))
}
