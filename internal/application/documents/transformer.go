package documents

import (
	"fmt"
	"strings"

	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/errors"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// Transformer maps one record plus the shared fee breakdown to a view model.
// Implementations are pure: no I/O, no clock beyond the record's own dates,
// and idempotent for identical input.
type Transformer interface {
	Kind() ftypes.DocumentKind
	Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel
}

// Set is the registry of all ten transformers, each wired to the same
// FirmProfile.  The set guarantees the cross-document consistency invariant:
// every transformer receives the one FeeBreakdown passed to Transform, so any
// document showing a total shows the same total.
type Set struct {
	profile      FirmProfile
	transformers map[ftypes.DocumentKind]Transformer
}

// NewSet constructs the full transformer registry for a firm profile.
func NewSet(profile FirmProfile) *Set {
	s := &Set{
		profile:      profile,
		transformers: make(map[ftypes.DocumentKind]Transformer, len(ftypes.AllDocumentKinds)),
	}
	for _, t := range []Transformer{
		&grantRequestTransformer{profile: profile},
		&completeSpecificationTransformer{profile: profile},
		&statementUndertakingTransformer{profile: profile},
		&inventorshipDeclarationTransformer{profile: profile},
		&publicationRequestTransformer{profile: profile},
		&examinationRequestTransformer{profile: profile},
		&powerOfAttorneyTransformer{profile: profile, general: false},
		&powerOfAttorneyTransformer{profile: profile, general: true},
		&coverLetterTransformer{profile: profile},
		&statusReportTransformer{profile: profile},
	} {
		s.transformers[t.Kind()] = t
	}
	return s
}

// Transform runs the transformer for a kind.  A nil record yields the
// EmptyResult sentinel; an unknown kind is the only error.
func (s *Set) Transform(kind ftypes.DocumentKind, r *filing.ApplicationRecord, fb fees.FeeBreakdown) (ViewModel, error) {
	t, ok := s.transformers[kind]
	if !ok {
		return ViewModel{}, errors.New(errors.ErrCodeDocumentKindUnknown, fmt.Sprintf("no transformer for kind %q", kind))
	}
	if r == nil {
		return EmptyResult(kind), nil
	}
	return t.Transform(r, fb), nil
}

// Kinds lists the registered document kinds in presentation order.
func (s *Set) Kinds() []ftypes.DocumentKind {
	return append([]ftypes.DocumentKind(nil), ftypes.AllDocumentKinds...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared field-level transforms
// ─────────────────────────────────────────────────────────────────────────────

// blank substitutes a fill-in underscore run for empty presentation text.
const blank = "______________"

// orBlank returns s, or the fill-in placeholder when s is empty.
func orBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return blank
	}
	return s
}

// nationalityPhrase renders a party's nationality recital.  Natural persons
// are cited as citizens; every other category as a company under the laws of
// its country.
func nationalityPhrase(category ftypes.ApplicantCategory, country string) string {
	if category == ftypes.CategoryNaturalPerson {
		return "a citizen of " + orBlank(country)
	}
	return "a company organized and existing under the laws of " + orBlank(country)
}

// firstApplicant returns the record's first applicant.  Sanitize guarantees a
// non-empty list, but the transformers stay total regardless.
func firstApplicant(r *filing.ApplicationRecord) filing.Party {
	if len(r.Applicants) == 0 {
		return filing.Party{}
	}
	return r.Applicants[0]
}

// effectiveInventors returns the inventor list, substituting the applicants
// when the record marks inventors as the same persons.
func effectiveInventors(r *filing.ApplicationRecord) []filing.Party {
	if r.InventorsSameAsApplicant {
		return r.Applicants
	}
	return r.Inventors
}

// effectivePriority applies the priority-claim defaulting rules: a blank
// applicant name inherits the first applicant's, a blank title inherits the
// record's title.
func effectivePriority(r *filing.ApplicationRecord, p filing.PriorityClaim) filing.PriorityClaim {
	if strings.TrimSpace(p.ApplicantName) == "" {
		p.ApplicantName = firstApplicant(r).Name
	}
	if strings.TrimSpace(p.TitleInPriority) == "" {
		p.TitleInPriority = r.Title
	}
	return p
}

// priorityTable renders the standard priority-claim grid with SHORT dates
// and defaulting applied.  Returns a zero-row table when no priority is
// claimed, letting each document decide whether to include it.
func priorityTable(r *filing.ApplicationRecord) Table {
	t := Table{
		Title:   "Priority Particulars",
		Columns: []string{"Country", "Application Number", "Filing Date", "Name of Applicant", "Title of the Invention"},
	}
	if !r.PriorityClaimed {
		return t
	}
	for _, p := range r.Priorities {
		p = effectivePriority(r, p)
		t.Rows = append(t.Rows, []string{
			orBlank(p.Country),
			orBlank(p.PriorityNumber),
			textfmt.ShortDate(p.PriorityDate),
			orBlank(p.ApplicantName),
			orBlank(p.TitleInPriority),
		})
	}
	return t
}

// partyTable renders a party grid with the nationality recital of the
// record's category.
func partyTable(title string, parties []filing.Party, category ftypes.ApplicantCategory) Table {
	t := Table{
		Title:   title,
		Columns: []string{"Name", "Nationality", "Country of Residence", "Address"},
	}
	for _, p := range parties {
		t.Rows = append(t.Rows, []string{
			orBlank(p.Name),
			nationalityPhrase(category, p.Nationality),
			orBlank(p.ResidenceCountry),
			orBlank(p.Address),
		})
	}
	return t
}

// feeTable renders the canonical fee grid from the shared breakdown.  Every
// document that shows money shows these exact figures.
func feeTable(fb fees.FeeBreakdown) Table {
	return Table{
		Title:   "Fee Computation",
		Columns: []string{"Head", "Units", "Amount (INR)"},
		Rows: [][]string{
			{"Basic filing fee", "1", amount(fb.BasicFee)},
			{"Excess pages", count(fb.ExtraPageCount), amount(fb.ExtraPageFee)},
			{"Excess claims", count(fb.ExtraClaimCount), amount(fb.ExtraClaimFee)},
			{"Excess priorities", count(fb.ExtraPriorityCount), amount(fb.ExtraPriorityFee)},
			{"Request for examination", "", amount(fb.ExaminationFee)},
			{"Sequence listing", "", amount(fb.SequenceFee)},
			{"Total", "", amount(fb.TotalFee)},
		},
	}
}

// amount renders a fee figure as digits; currency symbols are a Renderer
// concern.
func amount(v int64) string {
	return fmt.Sprintf("%d", v)
}

func count(n int) string {
	return fmt.Sprintf("%d", n)
}

// applicantNames joins all applicant names for recital lines.
func applicantNames(r *filing.ApplicationRecord) string {
	names := make([]string, 0, len(r.Applicants))
	for _, a := range r.Applicants {
		if strings.TrimSpace(a.Name) != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return blank
	}
	return strings.Join(names, "; ")
}

// extension reads an opaque repository-supplied extension field, blank-safe.
func extension(r *filing.ApplicationRecord, key string) string {
	if r.Extensions == nil {
		return ""
	}
	return r.Extensions[key]
}

// newViewModel seeds the common envelope for a record-backed document.
func newViewModel(kind ftypes.DocumentKind, r *filing.ApplicationRecord, heading, office string) ViewModel {
	return ViewModel{
		Kind:           kind,
		TemplateID:     templateID(kind),
		ArtifactBase:   ArtifactBase(kind, r.DocketNumber),
		Heading:        heading,
		Office:         office,
		IncludeClauses: map[string]bool{},
	}
}
