package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// grantRequestTransformer builds the application-for-grant request: the lead
// document carrying the full applicant/inventor/priority particulars, the
// page and claim counts, and the complete fee computation.
type grantRequestTransformer struct {
	profile FirmProfile
}

func (t *grantRequestTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocGrantRequest
}

func (t *grantRequestTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Application for Grant of Patent", r.Jurisdiction.TitleLabel())

	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Appropriate Office", Value: vm.Office},
		{Label: "Type of Application", Value: applicationTypeLabel(r.ApplicationType)},
		{Label: "Category of Applicant", Value: categoryLabel(r.ApplicantCategory)},
		{Label: "Title of the Invention", Value: orBlank(r.Title)},
	}

	vm.IncludeClauses["pct_national_phase"] = r.ApplicationType == ftypes.TypePCTNationalPhase
	if r.ApplicationType == ftypes.TypePCTNationalPhase {
		vm.Fields = append(vm.Fields,
			Field{Label: "International Application Number", Value: orBlank(r.InternationalApplicationNumber)},
			Field{Label: "International Filing Date", Value: textfmt.ShortDate(r.InternationalFilingDate)},
		)
	}

	vm.Tables = append(vm.Tables, partyTable("Applicants", r.Applicants, r.ApplicantCategory))

	vm.IncludeClauses["inventors_same_as_applicant"] = r.InventorsSameAsApplicant
	if !r.InventorsSameAsApplicant {
		vm.Tables = append(vm.Tables, partyTable("Inventors", r.Inventors, ftypes.CategoryNaturalPerson))
	}

	vm.IncludeClauses["priority_claimed"] = r.PriorityClaimed
	if r.PriorityClaimed {
		vm.Tables = append(vm.Tables, priorityTable(r))
	}

	vm.Tables = append(vm.Tables, Table{
		Title:   "Particulars of the Accompanying Documents",
		Columns: []string{"Item", "Pages / Count"},
		Rows: [][]string{
			{"Description", count(r.DescriptionPages)},
			{"Claims", count(r.ClaimPages)},
			{"Drawings", count(r.DrawingPages)},
			{"Abstract", count(r.AbstractPages)},
			{"Form 2", count(r.Form2Pages)},
			{"Number of Drawings", count(r.NumberOfDrawings)},
			{"Number of Claims", count(r.NumberOfClaims)},
			{"Number of Priorities", count(r.NumberOfPriorities)},
			{"Total Pages", count(r.TotalPages)},
		},
	})

	vm.Tables = append(vm.Tables, feeTable(fb))
	vm.Fields = append(vm.Fields,
		Field{Label: "Total Fee Payable", Value: amount(fb.TotalFee)},
		Field{Label: "Total Fee in Words", Value: textfmt.RupeesInWords(fb.TotalFee)},
	)

	vm.Paragraphs = append(vm.Paragraphs,
		"I/We, "+applicantNames(r)+", hereby request the grant of a patent for the invention titled \""+
			orBlank(r.Title)+"\" and declare that there is no lawful ground of objection to the grant.",
	)
	return vm
}

// applicationTypeLabel renders the route the way the form prints it.
func applicationTypeLabel(t ftypes.ApplicationType) string {
	switch t {
	case ftypes.TypeConvention:
		return "Convention"
	case ftypes.TypePCTNationalPhase:
		return "PCT National Phase"
	default:
		return "Ordinary"
	}
}

// categoryLabel renders the applicant category the way the form prints it.
func categoryLabel(c ftypes.ApplicantCategory) string {
	switch c {
	case ftypes.CategorySmallEntity:
		return "Small Entity"
	case ftypes.CategoryStartup:
		return "Startup"
	case ftypes.CategoryEducation:
		return "Educational Institution"
	case ftypes.CategoryOther:
		return "Other (Large Entity)"
	default:
		return "Natural Person"
	}
}
