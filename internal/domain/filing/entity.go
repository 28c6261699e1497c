// Package filing implements the application-record bounded context: the
// canonical record kept per patent application, its repeated sub-entities
// (applicants, inventors, priority claims), the invariants on those lists,
// and the eager derivation of the statutory fee breakdown.  All business
// rules that concern the record live here; persistence and rendering are
// handled by separate repository and adapter layers.
package filing

import (
	"strconv"
	"strings"
	"time"

	"github.com/turtacn/FilingDesk/internal/domain/fees"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// Party is one applicant or inventor.  Name is the only field required for
// display; the rest render as blanks when absent.
type Party struct {
	Name             string `json:"name"`
	Nationality      string `json:"nationality"`
	ResidenceCountry string `json:"residence_country"`
	Address          string `json:"address"`
}

// PriorityClaim is one earlier foreign filing whose date is claimed for this
// application.  ApplicantName and TitleInPriority default to the record's
// first applicant and title when blank; the defaulting happens at transform
// time, not here, so the stored record keeps the user's actual input.
type PriorityClaim struct {
	Country         string     `json:"country"`
	PriorityNumber  string     `json:"priority_number"`
	PriorityDate    *time.Time `json:"priority_date,omitempty"`
	ApplicantName   string     `json:"applicant_name,omitempty"`
	TitleInPriority string     `json:"title_in_priority,omitempty"`
}

// ApplicationRecord is the aggregate root: one canonical record per patent
// application.  The three repeated lists are never empty: a record is born
// with one blank entry in each, and removal of the last entry is rejected.
// Fees is derived only; it is recomputed on every change to a dependent field
// and never accepted from outside.
type ApplicationRecord struct {
	DocketNumber string `json:"docket_number"`

	Jurisdiction      ftypes.Jurisdiction      `json:"jurisdiction"`
	ApplicationType   ftypes.ApplicationType   `json:"application_type"`
	ApplicantCategory ftypes.ApplicantCategory `json:"applicant_category"`
	Title             string                   `json:"title"`

	// PCT national-phase fields; meaningful only when ApplicationType is
	// TypePCTNationalPhase.
	InternationalApplicationNumber string     `json:"international_application_number,omitempty"`
	InternationalFilingDate        *time.Time `json:"international_filing_date,omitempty"`

	Applicants               []Party `json:"applicants"`
	InventorsSameAsApplicant bool    `json:"inventors_same_as_applicant"`
	Inventors                []Party `json:"inventors"`

	PriorityClaimed bool            `json:"priority_claimed"`
	Priorities      []PriorityClaim `json:"priorities"`

	DescriptionPages   int `json:"description_pages"`
	ClaimPages         int `json:"claim_pages"`
	DrawingPages       int `json:"drawing_pages"`
	AbstractPages      int `json:"abstract_pages"`
	Form2Pages         int `json:"form2_pages"`
	NumberOfDrawings   int `json:"number_of_drawings"`
	NumberOfClaims     int `json:"number_of_claims"`
	NumberOfPriorities int `json:"number_of_priorities"`
	TotalPages         int `json:"total_pages"`

	RequestExamination bool       `json:"request_examination"`
	SequenceListing    bool       `json:"sequence_listing"`
	SequencePages      int        `json:"sequence_pages"`
	DepositDate        *time.Time `json:"deposit_date,omitempty"`

	// Fees is derived from the fields above.  Read-only for all consumers.
	Fees fees.FeeBreakdown `json:"fee_breakdown"`

	// Extensions carries repository-supplied fields outside the canonical schema
	// (external PCT number, publication date, client reference, ...).  The
	// core passes them through to documents opaquely, without validation.
	Extensions map[string]string `json:"extensions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int       `json:"version"`
}

// NewApplicationRecord creates a record with a single blank entry in each of
// the three repeated lists and a freshly derived fee breakdown.
func NewApplicationRecord(docketNumber string) *ApplicationRecord {
	now := time.Now().UTC()
	r := &ApplicationRecord{
		DocketNumber:      strings.TrimSpace(docketNumber),
		Jurisdiction:      ftypes.JurisdictionNewDelhi,
		ApplicationType:   ftypes.TypeOrdinary,
		ApplicantCategory: ftypes.CategoryNaturalPerson,
		Applicants:        []Party{{}},
		Inventors:         []Party{{}},
		Priorities:        []PriorityClaim{{}},
		Extensions:        map[string]string{},
		CreatedAt:         now,
		UpdatedAt:         now,
		Version:           1,
	}
	r.RecomputeFees()
	return r
}

// RecomputeFees re-derives the fee breakdown from the current dependent
// fields.  It is called by every mutator that touches a dependent field, so
// consumers can rely on Fees always agreeing with the counts.
func (r *ApplicationRecord) RecomputeFees() {
	r.Fees = fees.Compute(fees.Input{
		ApplicantCategory:  r.ApplicantCategory,
		TotalPages:         r.TotalPages,
		NumberOfClaims:     r.NumberOfClaims,
		NumberOfPriorities: r.NumberOfPriorities,
		RequestExamination: r.RequestExamination,
		SequencePages:      r.SequencePages,
	})
}

// SumOfPages returns the sum of the individual page-count fields.  It is a
// cosmetic figure shown on the complete specification and is deliberately
// not cross-validated against the user-entered TotalPages; the fee engine
// reads TotalPages only.  Whether the two should be reconciled is an open
// question with the filing team.
func (r *ApplicationRecord) SumOfPages() int {
	return r.DescriptionPages + r.ClaimPages + r.DrawingPages +
		r.AbstractPages + r.Form2Pages
}

// Sanitize coerces the record into the domain the fee engine is total over:
// counts become non-negative, the docket number is trimmed, unknown enums
// fall back to their defaults, and the derived breakdown is refreshed.
// Sanitize runs once at the repository boundary; inner layers assume its output.
func (r *ApplicationRecord) Sanitize() {
	r.DocketNumber = strings.TrimSpace(r.DocketNumber)
	r.Jurisdiction = ftypes.ParseJurisdiction(string(r.Jurisdiction))
	r.ApplicationType = ftypes.ParseApplicationType(string(r.ApplicationType))
	r.ApplicantCategory = ftypes.ParseApplicantCategory(string(r.ApplicantCategory))

	r.DescriptionPages = clampCount(r.DescriptionPages)
	r.ClaimPages = clampCount(r.ClaimPages)
	r.DrawingPages = clampCount(r.DrawingPages)
	r.AbstractPages = clampCount(r.AbstractPages)
	r.Form2Pages = clampCount(r.Form2Pages)
	r.NumberOfDrawings = clampCount(r.NumberOfDrawings)
	r.NumberOfClaims = clampCount(r.NumberOfClaims)
	r.NumberOfPriorities = clampCount(r.NumberOfPriorities)
	r.TotalPages = clampCount(r.TotalPages)
	r.SequencePages = clampCount(r.SequencePages)

	if len(r.Applicants) == 0 {
		r.Applicants = []Party{{}}
	}
	if len(r.Inventors) == 0 {
		r.Inventors = []Party{{}}
	}
	if len(r.Priorities) == 0 {
		r.Priorities = []PriorityClaim{{}}
	}
	if r.Extensions == nil {
		r.Extensions = map[string]string{}
	}

	r.RecomputeFees()
}

// touch advances the audit fields after a successful mutation.
func (r *ApplicationRecord) touch() {
	r.UpdatedAt = time.Now().UTC()
	r.Version++
}

// clampCount maps negative counts to zero.
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// CoerceCount converts boundary string input into a non-negative count.
// Non-numeric or negative input coerces to 0, so garbage from a form field
// never reaches the fee engine.
func CoerceCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
