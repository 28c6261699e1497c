package fees

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

func TestTierSelection(t *testing.T) {
	for _, cat := range []ftypes.ApplicantCategory{
		ftypes.CategoryNaturalPerson,
		ftypes.CategorySmallEntity,
		ftypes.CategoryStartup,
		ftypes.CategoryEducation,
	} {
		b := Compute(Input{ApplicantCategory: cat})
		assert.Equal(t, int64(1600), b.BasicFee, "category %s", cat)
	}

	b := Compute(Input{ApplicantCategory: ftypes.CategoryOther})
	assert.Equal(t, int64(8000), b.BasicFee)
}

func TestExtraPageCount(t *testing.T) {
	cases := []struct {
		pages     int
		wantCount int
		wantFee   int64
	}{
		{0, 0, 0},
		{29, 0, 0},
		{30, 0, 0},
		{31, 1, 160},
		{45, 15, 2400},
		{100, 70, 11200},
	}
	for _, tc := range cases {
		b := Compute(Input{ApplicantCategory: ftypes.CategoryStartup, TotalPages: tc.pages})
		assert.Equal(t, tc.wantCount, b.ExtraPageCount, "pages=%d", tc.pages)
		assert.Equal(t, tc.wantFee, b.ExtraPageFee, "pages=%d", tc.pages)
	}
}

func TestExtraPageCountMonotonic(t *testing.T) {
	prev := 0
	for pages := 0; pages <= 120; pages++ {
		b := Compute(Input{ApplicantCategory: ftypes.CategoryNaturalPerson, TotalPages: pages})
		assert.GreaterOrEqual(t, b.ExtraPageCount, prev, "pages=%d", pages)
		prev = b.ExtraPageCount
	}
}

func TestClaimAndPriorityAllowances(t *testing.T) {
	b := Compute(Input{
		ApplicantCategory:  ftypes.CategoryNaturalPerson,
		NumberOfClaims:     12,
		NumberOfPriorities: 3,
	})
	assert.Equal(t, 2, b.ExtraClaimCount)
	assert.Equal(t, int64(640), b.ExtraClaimFee)
	assert.Equal(t, 2, b.ExtraPriorityCount)
	assert.Equal(t, int64(3200), b.ExtraPriorityFee)

	b = Compute(Input{
		ApplicantCategory:  ftypes.CategoryNaturalPerson,
		NumberOfClaims:     10,
		NumberOfPriorities: 1,
	})
	assert.Zero(t, b.ExtraClaimFee)
	assert.Zero(t, b.ExtraPriorityFee)
}

func TestExaminationFee(t *testing.T) {
	b := Compute(Input{ApplicantCategory: ftypes.CategorySmallEntity, RequestExamination: true})
	assert.Equal(t, int64(4000), b.ExaminationFee)

	b = Compute(Input{ApplicantCategory: ftypes.CategoryOther, RequestExamination: true})
	assert.Equal(t, int64(20000), b.ExaminationFee)

	b = Compute(Input{ApplicantCategory: ftypes.CategoryOther})
	assert.Zero(t, b.ExaminationFee)
}

// The sequence fee steps down from per-page pricing to a flat cap at the
// 150/151 page boundary.  The discontinuity is part of the published schedule.
func TestSequenceFeeBoundary(t *testing.T) {
	at := func(pages int, cat ftypes.ApplicantCategory) int64 {
		return Compute(Input{ApplicantCategory: cat, SequencePages: pages}).SequenceFee
	}

	assert.Equal(t, int64(0), at(0, ftypes.CategoryNaturalPerson))
	assert.Equal(t, int64(160), at(1, ftypes.CategoryNaturalPerson))
	assert.Equal(t, int64(150*160), at(150, ftypes.CategoryNaturalPerson))
	assert.Equal(t, int64(24000), at(151, ftypes.CategoryNaturalPerson))
	assert.Equal(t, int64(24000), at(5000, ftypes.CategoryNaturalPerson))

	assert.Equal(t, int64(150*800), at(150, ftypes.CategoryOther))
	assert.Equal(t, int64(120000), at(151, ftypes.CategoryOther))
}

func TestTotalIsExactSum(t *testing.T) {
	b := Compute(Input{
		ApplicantCategory:  ftypes.CategoryOther,
		TotalPages:         87,
		NumberOfClaims:     23,
		NumberOfPriorities: 4,
		RequestExamination: true,
		SequencePages:      200,
	})
	sum := b.BasicFee + b.ExtraPageFee + b.ExtraClaimFee + b.ExtraPriorityFee +
		b.ExaminationFee + b.SequenceFee
	assert.Equal(t, sum, b.TotalFee)
}

// End-to-end scenario from the fee schedule documentation.
func TestHighTierScenario(t *testing.T) {
	b := Compute(Input{
		ApplicantCategory:  ftypes.CategoryOther,
		TotalPages:         45,
		NumberOfClaims:     14,
		NumberOfPriorities: 2,
		RequestExamination: true,
		SequencePages:      0,
	})

	assert.Equal(t, int64(8000), b.BasicFee)
	assert.Equal(t, 15, b.ExtraPageCount)
	assert.Equal(t, int64(12000), b.ExtraPageFee)
	assert.Equal(t, 4, b.ExtraClaimCount)
	assert.Equal(t, int64(6400), b.ExtraClaimFee)
	assert.Equal(t, 1, b.ExtraPriorityCount)
	assert.Equal(t, int64(8000), b.ExtraPriorityFee)
	assert.Equal(t, int64(20000), b.ExaminationFee)
	assert.Zero(t, b.SequenceFee)
	assert.Equal(t, int64(54400), b.TotalFee)
}

func TestComputeIsDeterministic(t *testing.T) {
	in := Input{
		ApplicantCategory:  ftypes.CategoryStartup,
		TotalPages:         31,
		NumberOfClaims:     11,
		NumberOfPriorities: 2,
		RequestExamination: true,
		SequencePages:      10,
	}
	assert.Equal(t, Compute(in), Compute(in))
}
