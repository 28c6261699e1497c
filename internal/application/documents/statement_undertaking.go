package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// statementUndertakingTransformer builds the statement and undertaking on
// corresponding foreign applications.  It lists every claimed priority with
// defaulting applied and closes with the continuing-disclosure undertaking.
type statementUndertakingTransformer struct {
	profile FirmProfile
}

func (t *statementUndertakingTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocStatementAndUndertaking
}

func (t *statementUndertakingTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Statement and Undertaking", r.Jurisdiction.TitleLabel())

	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Name of the Applicant", Value: applicantNames(r)},
	}

	vm.IncludeClauses["priority_claimed"] = r.PriorityClaimed
	if r.PriorityClaimed {
		vm.Paragraphs = append(vm.Paragraphs,
			"I/We, "+applicantNames(r)+", hereby declare that the application(s) for patent listed below have been made in a country outside India in respect of the same or substantially the same invention.")
		vm.Tables = append(vm.Tables, priorityTable(r))
	} else {
		vm.Paragraphs = append(vm.Paragraphs,
			"I/We, "+applicantNames(r)+", hereby declare that no application for patent in respect of the same or substantially the same invention has been made in any country outside India.")
	}

	vm.Paragraphs = append(vm.Paragraphs,
		"I/We undertake that, up to the date of grant of the patent, I/we will keep the Controller informed in writing of the details of every corresponding application filed outside India within the prescribed period.")

	vm.Fields = append(vm.Fields,
		Field{Label: "Place", Value: orBlank(t.profile.SigningPlace)},
		Field{Label: "Dated", Value: textfmt.LongDate(nil)},
	)
	return vm
}
