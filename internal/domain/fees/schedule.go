// Package fees implements the statutory filing-fee schedule: a deterministic,
// side-effect-free mapping from sanitized application counts to a FeeBreakdown.
// The schedule is the single source of truth for every fee figure shown on any
// document; transformers must never recompute amounts locally.
package fees

import (
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// Free allowances under the fee schedule.  Pages beyond the page allowance,
// claims beyond the claim allowance, and priorities beyond the single free
// priority each attract a per-unit surcharge.
const (
	FreePageAllowance     = 30
	FreeClaimAllowance    = 10
	FreePriorityAllowance = 1

	// SequenceFeeCapPages is the sequence-listing page count above which the
	// per-page fee is replaced by a flat cap.  The step down from
	// 150 * per-page to the flat cap at page 151 is part of the published
	// schedule and is covered by a dedicated boundary test.
	SequenceFeeCapPages = 150
)

// Tier carries the per-unit rates of one fee tier.
type Tier struct {
	Basic            int64
	PerExtraPage     int64
	PerExtraClaim    int64
	PerExtraPriority int64
	Examination      int64
	PerSequencePage  int64
	SequenceCap      int64
}

// The two published rate tables.  Every applicant category except "other"
// currently resolves to the standard tier; the schedule therefore collapses
// natural persons, small entities, startups, and educational institutions
// onto one rate table.  This matches the legacy fee engine and is tracked as
// an open question with the filing team; do not "fix" it here without
// confirmation.
var (
	standardTier = Tier{
		Basic:            1600,
		PerExtraPage:     160,
		PerExtraClaim:    320,
		PerExtraPriority: 1600,
		Examination:      4000,
		PerSequencePage:  160,
		SequenceCap:      24000,
	}

	highTier = Tier{
		Basic:            8000,
		PerExtraPage:     800,
		PerExtraClaim:    1600,
		PerExtraPriority: 8000,
		Examination:      20000,
		PerSequencePage:  800,
		SequenceCap:      120000,
	}
)

// TierFor returns the rate table selected by an applicant category.
func TierFor(category ftypes.ApplicantCategory) Tier {
	if category == ftypes.CategoryOther {
		return highTier
	}
	return standardTier
}

// Input carries the sanitized record fields the schedule depends on.  Callers
// sanitize at the repository boundary: every count is non-negative by the time it
// reaches Compute.
type Input struct {
	ApplicantCategory  ftypes.ApplicantCategory
	TotalPages         int
	NumberOfClaims     int
	NumberOfPriorities int
	RequestExamination bool
	SequencePages      int
}

// FeeBreakdown is the derived fee structure for one application record.  It is
// recomputed eagerly whenever a dependent field changes and treated as
// read-only by every consumer, including the document transformers.
type FeeBreakdown struct {
	BasicFee           int64 `json:"basic_fee"`
	ExtraPageCount     int   `json:"extra_page_count"`
	ExtraPageFee       int64 `json:"extra_page_fee"`
	ExtraClaimCount    int   `json:"extra_claim_count"`
	ExtraClaimFee      int64 `json:"extra_claim_fee"`
	ExtraPriorityCount int   `json:"extra_priority_count"`
	ExtraPriorityFee   int64 `json:"extra_priority_fee"`
	ExaminationFee     int64 `json:"examination_fee"`
	SequenceFee        int64 `json:"sequence_fee"`
	TotalFee           int64 `json:"total_fee"`
}

// Compute derives the FeeBreakdown for the given input.  It is a total, pure
// function: no I/O, no clock, no randomness, and TotalFee is always the exact
// sum of the other components.
func Compute(in Input) FeeBreakdown {
	tier := TierFor(in.ApplicantCategory)

	b := FeeBreakdown{BasicFee: tier.Basic}

	b.ExtraPageCount = excess(in.TotalPages, FreePageAllowance)
	b.ExtraPageFee = int64(b.ExtraPageCount) * tier.PerExtraPage

	b.ExtraClaimCount = excess(in.NumberOfClaims, FreeClaimAllowance)
	b.ExtraClaimFee = int64(b.ExtraClaimCount) * tier.PerExtraClaim

	b.ExtraPriorityCount = excess(in.NumberOfPriorities, FreePriorityAllowance)
	b.ExtraPriorityFee = int64(b.ExtraPriorityCount) * tier.PerExtraPriority

	if in.RequestExamination {
		b.ExaminationFee = tier.Examination
	}

	b.SequenceFee = sequenceFee(in.SequencePages, tier)

	b.TotalFee = b.BasicFee + b.ExtraPageFee + b.ExtraClaimFee +
		b.ExtraPriorityFee + b.ExaminationFee + b.SequenceFee
	return b
}

// sequenceFee prices a sequence listing: free at zero pages, per-page up to
// and including SequenceFeeCapPages, then a flat cap regardless of length.
func sequenceFee(pages int, tier Tier) int64 {
	switch {
	case pages <= 0:
		return 0
	case pages <= SequenceFeeCapPages:
		return int64(pages) * tier.PerSequencePage
	default:
		return tier.SequenceCap
	}
}

// excess returns max(0, n - allowance).
func excess(n, allowance int) int {
	if n > allowance {
		return n - allowance
	}
	return 0
}
