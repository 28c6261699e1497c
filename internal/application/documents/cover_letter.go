package documents

import (
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// coverLetterTransformer builds the covering letter to the patent office.
// The fee figures come from the one shared breakdown; the letter never
// recomputes an estimate of its own.
type coverLetterTransformer struct {
	profile FirmProfile
}

func (t *coverLetterTransformer) Kind() ftypes.DocumentKind {
	return ftypes.DocCoverLetter
}

func (t *coverLetterTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	vm := newViewModel(t.Kind(), r, "Covering Letter", r.Jurisdiction.TitleLabel())

	vm.Fields = []Field{
		{Label: "From", Value: orBlank(t.profile.FirmName)},
		{Label: "To", Value: "The Controller of Patents, Patent Office, " + vm.Office},
		{Label: "Date", Value: textfmt.ShortDate(nil)},
		{Label: "Our Ref", Value: orBlank(r.DocketNumber)},
		{Label: "Re", Value: "Patent application for \"" + orBlank(r.Title) + "\" in the name of " + applicantNames(r)},
	}

	vm.Paragraphs = append(vm.Paragraphs,
		"Dear Sir/Madam,",
		"We submit herewith the enclosed documents for filing in respect of the above application.")

	enclosures := Table{
		Title:   "Enclosures",
		Columns: []string{"Document", "Copies"},
		Rows: [][]string{
			{"Application for Grant of Patent", "1"},
			{"Complete Specification", "1"},
			{"Statement and Undertaking", "1"},
			{"Declaration as to Inventorship", "1"},
			{"Power of Attorney", "1"},
		},
	}
	vm.IncludeClauses["request_examination"] = r.RequestExamination
	if r.RequestExamination {
		enclosures.Rows = append(enclosures.Rows, []string{"Request for Examination", "1"})
	}
	vm.IncludeClauses["sequence_listing"] = r.SequenceListing
	if r.SequenceListing {
		enclosures.Rows = append(enclosures.Rows, []string{"Sequence Listing", "1"})
	}
	vm.Tables = append(vm.Tables, enclosures)

	vm.Tables = append(vm.Tables, feeTable(fb))
	vm.Fields = append(vm.Fields,
		Field{Label: "Total Fee Payable", Value: amount(fb.TotalFee)},
		Field{Label: "Total Fee in Words", Value: textfmt.RupeesInWords(fb.TotalFee)},
	)

	vm.Paragraphs = append(vm.Paragraphs,
		"Kindly acknowledge receipt and take the enclosed documents on record.",
		"Yours faithfully,",
		agentNames(t.profile)+", for "+orBlank(t.profile.FirmName))
	return vm
}
