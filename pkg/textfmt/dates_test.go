package textfmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortDate(t *testing.T) {
	d := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05/03/2024", ShortDate(&d))
	assert.Equal(t, ShortDatePlaceholder, ShortDate(nil))
}

func TestLongDate(t *testing.T) {
	cases := []struct {
		day   int
		month time.Month
		year  int
		want  string
	}{
		{5, time.March, 2024, "5th day of March, 2024"},
		{1, time.January, 2023, "1st day of January, 2023"},
		{2, time.June, 2022, "2nd day of June, 2022"},
		{3, time.October, 2021, "3rd day of October, 2021"},
		{11, time.April, 2024, "11th day of April, 2024"},
		{12, time.April, 2024, "12th day of April, 2024"},
		{13, time.April, 2024, "13th day of April, 2024"},
		{21, time.May, 2024, "21st day of May, 2024"},
		{22, time.May, 2024, "22nd day of May, 2024"},
		{23, time.May, 2024, "23rd day of May, 2024"},
		{31, time.December, 2024, "31st day of December, 2024"},
	}
	for _, tc := range cases {
		d := time.Date(tc.year, tc.month, tc.day, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, LongDate(&d))
	}
	assert.Equal(t, LongDatePlaceholder, LongDate(nil))
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2024-03-05")
	if assert.NotNil(t, got) {
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, time.March, got.Month())
		assert.Equal(t, 5, got.Day())
	}

	got = ParseDate("05/03/2024")
	if assert.NotNil(t, got) {
		assert.Equal(t, time.March, got.Month())
	}

	assert.Nil(t, ParseDate(""))
	assert.Nil(t, ParseDate("not a date"))
	assert.Nil(t, ParseDate("2024-13-45"))
}
