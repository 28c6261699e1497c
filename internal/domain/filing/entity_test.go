package filing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

func TestNewApplicationRecord(t *testing.T) {
	r := NewApplicationRecord("  IN-2024-0042 ")

	assert.Equal(t, "IN-2024-0042", r.DocketNumber)
	assert.Equal(t, ftypes.JurisdictionNewDelhi, r.Jurisdiction)
	assert.Equal(t, ftypes.TypeOrdinary, r.ApplicationType)
	assert.Equal(t, ftypes.CategoryNaturalPerson, r.ApplicantCategory)

	// A record is born with one blank entry in each repeated list.
	assert.Len(t, r.Applicants, 1)
	assert.Len(t, r.Inventors, 1)
	assert.Len(t, r.Priorities, 1)

	// The breakdown is derived at birth: standard basic fee, nothing else.
	assert.Equal(t, int64(1600), r.Fees.BasicFee)
	assert.Equal(t, int64(1600), r.Fees.TotalFee)
}

func TestSanitizeClampsAndDefaults(t *testing.T) {
	r := &ApplicationRecord{
		DocketNumber:      " D-1 ",
		Jurisdiction:      ftypes.Jurisdiction("gotham"),
		ApplicantCategory: ftypes.ApplicantCategory("other"),
		TotalPages:        -5,
		NumberOfClaims:    -1,
		SequencePages:     -100,
	}
	r.Sanitize()

	assert.Equal(t, "D-1", r.DocketNumber)
	assert.Equal(t, ftypes.JurisdictionNewDelhi, r.Jurisdiction)
	assert.Equal(t, ftypes.CategoryOther, r.ApplicantCategory)
	assert.Zero(t, r.TotalPages)
	assert.Zero(t, r.NumberOfClaims)
	assert.Zero(t, r.SequencePages)

	assert.Len(t, r.Applicants, 1)
	assert.Len(t, r.Inventors, 1)
	assert.Len(t, r.Priorities, 1)
	assert.NotNil(t, r.Extensions)

	// Sanitize refreshes the derived breakdown from the clamped counts.
	assert.Equal(t, int64(8000), r.Fees.BasicFee)
	assert.Equal(t, int64(8000), r.Fees.TotalFee)
}

func TestRecomputeFeesTracksDependentFields(t *testing.T) {
	r := NewApplicationRecord("D-2")
	r.TotalPages = 45
	r.NumberOfClaims = 14
	r.RecomputeFees()

	assert.Equal(t, 15, r.Fees.ExtraPageCount)
	assert.Equal(t, 4, r.Fees.ExtraClaimCount)
	assert.Equal(t, r.Fees.BasicFee+r.Fees.ExtraPageFee+r.Fees.ExtraClaimFee, r.Fees.TotalFee)
}

// SumOfPages is cosmetic and independent of TotalPages; a discrepancy between
// the two is representable and must survive sanitization.
func TestSumOfPagesNotCrossValidated(t *testing.T) {
	r := NewApplicationRecord("D-3")
	r.DescriptionPages = 10
	r.ClaimPages = 4
	r.DrawingPages = 3
	r.AbstractPages = 1
	r.Form2Pages = 2
	r.TotalPages = 99
	r.Sanitize()

	assert.Equal(t, 20, r.SumOfPages())
	assert.Equal(t, 99, r.TotalPages)
	assert.Equal(t, 69, r.Fees.ExtraPageCount)
}

func TestCoerceCount(t *testing.T) {
	assert.Equal(t, 42, CoerceCount("42"))
	assert.Equal(t, 7, CoerceCount(" 7 "))
	assert.Zero(t, CoerceCount("-3"))
	assert.Zero(t, CoerceCount("twelve"))
	assert.Zero(t, CoerceCount(""))
	assert.Zero(t, CoerceCount("3.5"))
}
