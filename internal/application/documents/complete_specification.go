package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// completeSpecificationTransformer builds the complete-specification front
// sheet.  The office label is upper case on this document.
type completeSpecificationTransformer struct {
	profile FirmProfile
}

func (t *completeSpecificationTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocCompleteSpecification
}

func (t *completeSpecificationTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Complete Specification", r.Jurisdiction.UpperLabel())

	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Title of the Invention", Value: orBlank(r.Title)},
	}

	for _, a := range r.Applicants {
		vm.Paragraphs = append(vm.Paragraphs,
			orBlank(a.Name)+", "+nationalityPhrase(r.ApplicantCategory, a.Nationality)+
				", having its address at "+orBlank(a.Address))
	}

	vm.IncludeClauses["priority_claimed"] = r.PriorityClaimed
	if r.PriorityClaimed {
		vm.Tables = append(vm.Tables, priorityTable(r))
	}

	// SumOfPages is the cosmetic per-section sum; TotalPages is what the fee
	// engine reads.  Both print, unreconciled.
	vm.Tables = append(vm.Tables, Table{
		Title:   "Pagination",
		Columns: []string{"Section", "Pages"},
		Rows: [][]string{
			{"Description", count(r.DescriptionPages)},
			{"Claims", count(r.ClaimPages)},
			{"Drawings", count(r.DrawingPages)},
			{"Abstract", count(r.AbstractPages)},
			{"Form 2", count(r.Form2Pages)},
			{"Sum of Sections", count(r.SumOfPages())},
			{"Total Pages (as filed)", count(r.TotalPages)},
		},
	})

	vm.IncludeClauses["sequence_listing"] = r.SequenceListing
	if r.SequenceListing {
		vm.Fields = append(vm.Fields,
			Field{Label: "Sequence Listing Pages", Value: count(r.SequencePages)},
			Field{Label: "Deposit Date", Value: textfmt.ShortDate(r.DepositDate)},
		)
	}

	vm.Paragraphs = append(vm.Paragraphs,
		"The following specification particularly describes the invention and the manner in which it is to be performed.")
	return vm
}
