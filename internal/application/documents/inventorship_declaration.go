package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// inventorshipDeclarationTransformer builds the declaration as to
// inventorship.  When the record marks the inventors as the applicants
// themselves the applicant list stands in for the inventor list.  The office
// label is upper case on this document.
type inventorshipDeclarationTransformer struct {
	profile FirmProfile
}

func (t *inventorshipDeclarationTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocInventorshipDeclaration
}

func (t *inventorshipDeclarationTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Declaration as to Inventorship", r.Jurisdiction.UpperLabel())

	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Title of the Invention", Value: orBlank(r.Title)},
	}

	inventors := effectiveInventors(r)
	vm.IncludeClauses["inventors_same_as_applicant"] = r.InventorsSameAsApplicant

	table := Table{
		Title:   "True and First Inventors",
		Columns: []string{"Name", "Nationality", "Address"},
	}
	category := ftypes.CategoryNaturalPerson
	if r.InventorsSameAsApplicant {
		category = r.ApplicantCategory
	}
	for _, inv := range inventors {
		table.Rows = append(table.Rows, []string{
			orBlank(inv.Name),
			nationalityPhrase(category, inv.Nationality),
			orBlank(inv.Address),
		})
	}
	vm.Tables = append(vm.Tables, table)

	vm.Paragraphs = append(vm.Paragraphs,
		"I/We, "+applicantNames(r)+", hereby declare that the person(s) named above is/are the true and first inventor(s) of the invention disclosed in the complete specification filed in pursuance of this application.")

	vm.Fields = append(vm.Fields,
		Field{Label: "Place", Value: orBlank(t.profile.SigningPlace)},
		Field{Label: "Dated", Value: textfmt.LongDate(nil)},
	)
	return vm
}
