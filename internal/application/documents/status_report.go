package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// statusReportTransformer builds the client-facing status report: filing
// particulars, the official fees as actually computed, and the next actions
// pending on the record.  Fee figures come from the one shared breakdown.
// The office label is upper case on this document.
type statusReportTransformer struct {
	profile FirmProfile
}

func (t *statusReportTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocStatusReport
}

func (t *statusReportTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Status Report", r.Jurisdiction.UpperLabel())

	vm.Fields = []Field{
		{Label: "Prepared By", Value: orBlank(t.profile.FirmName)},
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Application Number", Value: orBlank(extension(r, "application_number"))},
		{Label: "Client Reference", Value: orBlank(extension(r, "client_reference"))},
		{Label: "Applicant", Value: applicantNames(r)},
		{Label: "Title of the Invention", Value: orBlank(r.Title)},
		{Label: "Type of Application", Value: applicationTypeLabel(r.ApplicationType)},
		{Label: "Category of Applicant", Value: categoryLabel(r.ApplicantCategory)},
		{Label: "Appropriate Office", Value: vm.Office},
		{Label: "Date of Publication", Value: textfmt.ShortDate(textfmt.ParseDate(extension(r, "publication_date")))},
		{Label: "Last Updated", Value: textfmt.ShortDate(&r.UpdatedAt)},
	}

	vm.Tables = append(vm.Tables, feeTable(fb))
	vm.Fields = append(vm.Fields,
		Field{Label: "Total Official Fees", Value: amount(fb.TotalFee)},
		Field{Label: "Total Official Fees in Words", Value: textfmt.RupeesInWords(fb.TotalFee)},
	)

	vm.Paragraphs = append(vm.Paragraphs, nextActions(r)...)
	return vm
}

// nextActions lists the follow-ups still pending on the record.
func nextActions(r *filing.ApplicationRecord) []string {
	var actions []string
	if !r.RequestExamination {
		actions = append(actions, "Next action: file the request for examination within the statutory period.")
	}
	if r.PriorityClaimed {
		hasDate := false
		for _, p := range r.Priorities {
			if p.PriorityDate != nil {
				hasDate = true
				break
			}
		}
		if !hasDate {
			actions = append(actions, "Next action: obtain the filing dates of the claimed priority applications.")
		}
		actions = append(actions, "Reminder: certified priority documents must be on file within the prescribed period.")
	}
	if r.SequenceListing && r.SequencePages == 0 {
		actions = append(actions, "Next action: confirm the page count of the sequence listing.")
	}
	if len(actions) == 0 {
		actions = append(actions, "No actions are currently pending on this filing.")
	}
	return actions
}
