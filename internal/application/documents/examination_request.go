package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// examinationRequestTransformer builds the request for examination.  The fee
// shown is the examination head of the one shared breakdown; the publication
// date, when the office has published, arrives as a Store extension field.
// The office label is upper case on this document.
type examinationRequestTransformer struct {
	profile FirmProfile
}

func (t *examinationRequestTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocExaminationRequest
}

func (t *examinationRequestTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Request for Examination", r.Jurisdiction.UpperLabel())

	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Application Number", Value: orBlank(extension(r, "application_number"))},
		{Label: "Date of Publication", Value: textfmt.ShortDate(textfmt.ParseDate(extension(r, "publication_date")))},
		{Label: "Name of the Applicant", Value: applicantNames(r)},
		{Label: "Title of the Invention", Value: orBlank(r.Title)},
	}

	vm.Tables = append(vm.Tables, partyTable("Applicants", r.Applicants, r.ApplicantCategory))

	vm.IncludeClauses["inventors_same_as_applicant"] = r.InventorsSameAsApplicant
	if !r.InventorsSameAsApplicant {
		vm.Tables = append(vm.Tables, partyTable("Inventors", r.Inventors, ftypes.CategoryNaturalPerson))
	}

	vm.Fields = append(vm.Fields,
		Field{Label: "Examination Fee", Value: amount(fb.ExaminationFee)},
		Field{Label: "Examination Fee in Words", Value: textfmt.RupeesInWords(fb.ExaminationFee)},
	)

	vm.Paragraphs = append(vm.Paragraphs,
		"I/We, "+applicantNames(r)+", hereby request that the above application be examined under the applicable provisions.")
	return vm
}
