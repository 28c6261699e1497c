package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// publicationRequestTransformer builds the request for early publication.
// Publication carries its own statutory fee outside the filing breakdown, so
// this document shows no money; the fee column on the form is left to the
// paying agent.
type publicationRequestTransformer struct {
	profile FirmProfile
}

func (t *publicationRequestTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocPublicationRequest
}

func (t *publicationRequestTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Request for Early Publication", r.Jurisdiction.TitleLabel())

	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Application Number", Value: orBlank(extension(r, "application_number"))},
		{Label: "Name of the Applicant", Value: applicantNames(r)},
		{Label: "Title of the Invention", Value: orBlank(r.Title)},
	}

	vm.Paragraphs = append(vm.Paragraphs,
		"I/We, "+applicantNames(r)+", hereby request early publication of the above application under the applicable rules.")
	return vm
}
