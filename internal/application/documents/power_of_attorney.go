package documents

import (
	"strings"

	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// powerOfAttorneyTransformer builds both power-of-attorney variants.  The
// specific form authorizes the firm's agents for this one application; the
// general form authorizes them for all of the applicant's patent matters.
// Only the first applicant signs, and the agent roster comes from the firm
// profile, never from the record.
type powerOfAttorneyTransformer struct {
	profile FirmProfile
	general bool
}

func (t *powerOfAttorneyTransformer) Kind() ftypes.DocumentKind {
	if t.general {
		return ftypes.DocPowerOfAttorneyGeneral
	}
	return ftypes.DocPowerOfAttorneySpecific
}

func (t *powerOfAttorneyTransformer) Transform(r *filing.ApplicationRecord, fb fees.FeeBreakdown) ViewModel {
	heading := "Power of Attorney"
	if t.general {
		heading = "General Power of Attorney"
	}
	vm := newViewModel(t.Kind(), r, heading, r.Jurisdiction.TitleLabel())

	principal := firstApplicant(r)
	vm.Fields = []Field{
		{Label: "Docket Number", Value: orBlank(r.DocketNumber)},
		{Label: "Principal", Value: orBlank(principal.Name)},
	}

	vm.Tables = append(vm.Tables, Table{
		Title:   "Authorized Agents",
		Columns: []string{"Name", "Registration Number"},
		Rows:    t.agentRows(),
	})

	recital := "I/We, " + orBlank(principal.Name) + ", " +
		nationalityPhrase(r.ApplicantCategory, principal.Nationality) +
		", having its address at " + orBlank(principal.Address) +
		", hereby appoint the agents of " + orBlank(t.profile.FirmName) +
		" named above, jointly and severally, as my/our attorneys"

	vm.IncludeClauses["general_authority"] = t.general
	if t.general {
		recital += " in respect of all matters relating to patents in India, including the filing and prosecution of applications, and to receive all notices and correspondence on my/our behalf."
	} else {
		recital += " in respect of the application identified by docket number " +
			orBlank(r.DocketNumber) + " for the invention titled \"" + orBlank(r.Title) +
			"\", and to receive all notices and correspondence relating to it on my/our behalf."
	}
	vm.Paragraphs = append(vm.Paragraphs, recital,
		"I/We hereby ratify and confirm all acts lawfully done by the said attorneys in pursuance of this authorization.")

	vm.Fields = append(vm.Fields,
		Field{Label: "Place", Value: orBlank(t.profile.SigningPlace)},
		Field{Label: "Dated", Value: textfmt.LongDate(nil)},
	)
	return vm
}

func (t *powerOfAttorneyTransformer) agentRows() [][]string {
	if len(t.profile.Agents) == 0 {
		return [][]string{{blank, blank}}
	}
	rows := make([][]string, 0, len(t.profile.Agents))
	for _, a := range t.profile.Agents {
		rows = append(rows, []string{orBlank(a.Name), orBlank(a.RegistrationNumber)})
	}
	return rows
}

// agentNames joins the roster for recital lines on correspondence documents.
func agentNames(profile FirmProfile) string {
	names := make([]string, 0, len(profile.Agents))
	for _, a := range profile.Agents {
		if strings.TrimSpace(a.Name) != "" {
			names = append(names, a.Name)
		}
	}
	if len(names) == 0 {
		return blank
	}
	return strings.Join(names, "; ")
}
