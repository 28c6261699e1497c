package documents

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FilingDesk/internal/domain/fees"
	"github.com/turtacn/FilingDesk/internal/domain/filing"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

func testProfile() FirmProfile {
	return FirmProfile{
		FirmName:     "Rao & Menon IP Services",
		AddressLines: []string{"4th Floor, Prestige Towers", "Bengaluru 560001"},
		SigningPlace: "Bengaluru",
		Agents: []Agent{
			{Name: "K. Rao", RegistrationNumber: "IN/PA-1234"},
			{Name: "S. Menon", RegistrationNumber: "IN/PA-5678"},
		},
	}
}

func testRecord() *filing.ApplicationRecord {
	r := filing.NewApplicationRecord("IN-2024-0042")
	r.Title = "Process for Preparing Widgets"
	r.Jurisdiction = ftypes.JurisdictionChennai
	r.ApplicantCategory = ftypes.CategoryOther
	r.Applicants[0] = filing.Party{
		Name:             "Acme Pharma Ltd",
		Nationality:      "India",
		ResidenceCountry: "India",
		Address:          "12 MG Road, Bengaluru",
	}
	r.InventorsSameAsApplicant = false
	r.Inventors[0] = filing.Party{Name: "Dr. A. Sharma", Nationality: "India"}
	r.PriorityClaimed = true
	d := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	r.Priorities[0] = filing.PriorityClaim{Country: "US", PriorityNumber: "US 63/123,456", PriorityDate: &d}
	r.TotalPages = 45
	r.NumberOfClaims = 14
	r.NumberOfPriorities = 2
	r.RequestExamination = true
	r.RecomputeFees()
	return r
}

func TestNilRecordYieldsEmptyResultForAllKinds(t *testing.T) {
	set := NewSet(testProfile())
	for _, kind := range set.Kinds() {
		vm, err := set.Transform(kind, nil, fees.FeeBreakdown{})
		require.NoError(t, err, kind)
		assert.True(t, vm.IsEmpty(), kind)
		assert.Equal(t, kind, vm.Kind)
		assert.Equal(t, []string{"No application data."}, vm.Paragraphs, kind)
	}
}

func TestUnknownKindRejected(t *testing.T) {
	set := NewSet(testProfile())
	_, err := set.Transform(ftypes.DocumentKind("telegram"), testRecord(), fees.FeeBreakdown{})
	assert.Error(t, err)
}

func TestAllKindsRegistered(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()
	for _, kind := range ftypes.AllDocumentKinds {
		vm, err := set.Transform(kind, r, r.Fees)
		require.NoError(t, err, kind)
		assert.False(t, vm.IsEmpty(), kind)
		assert.NotEmpty(t, vm.Heading, kind)
		assert.Equal(t, "filingdesk/"+string(kind)+"/v1", vm.TemplateID, kind)
	}
}

// Every document that shows a total shows the exact figure from the one
// shared breakdown.
func TestTotalFeeConsistentAcrossDocuments(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()
	require.Equal(t, int64(54400), r.Fees.TotalFee)

	for _, kind := range []ftypes.DocumentKind{
		ftypes.DocGrantRequest,
		ftypes.DocCoverLetter,
		ftypes.DocStatusReport,
	} {
		vm, err := set.Transform(kind, r, r.Fees)
		require.NoError(t, err, kind)
		assert.Equal(t, "54400", fieldValue(vm, "Total Fee Payable", "Total Official Fees"), kind)
	}
}

func TestExaminationRequestShowsSharedExamFee(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()

	vm, err := set.Transform(ftypes.DocExaminationRequest, r, r.Fees)
	require.NoError(t, err)
	assert.Equal(t, "20000", fieldValue(vm, "Examination Fee"))
	assert.Equal(t, "Rupees Twenty Thousand Only", fieldValue(vm, "Examination Fee in Words"))
}

func TestNationalityPhrasing(t *testing.T) {
	assert.Equal(t, "a citizen of India",
		nationalityPhrase(ftypes.CategoryNaturalPerson, "India"))
	assert.Equal(t, "a company organized and existing under the laws of India",
		nationalityPhrase(ftypes.CategoryOther, "India"))
	assert.Equal(t, "a citizen of ______________",
		nationalityPhrase(ftypes.CategoryNaturalPerson, ""))
}

func TestPriorityDefaulting(t *testing.T) {
	r := testRecord()
	table := priorityTable(r)
	require.Len(t, table.Rows, 1)

	row := table.Rows[0]
	assert.Equal(t, "US", row[0])
	assert.Equal(t, "15/06/2023", row[2])
	assert.Equal(t, "Acme Pharma Ltd", row[3], "blank applicant name inherits first applicant")
	assert.Equal(t, "Process for Preparing Widgets", row[4], "blank title inherits record title")
}

func TestPriorityTableEmptyWhenNotClaimed(t *testing.T) {
	r := testRecord()
	r.PriorityClaimed = false
	assert.Empty(t, priorityTable(r).Rows)
}

// Office casing differs per document kind and is intentional.
func TestOfficeCasingPerDocument(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()

	title := map[ftypes.DocumentKind]bool{
		ftypes.DocGrantRequest:            true,
		ftypes.DocStatementAndUndertaking: true,
		ftypes.DocPublicationRequest:      true,
		ftypes.DocPowerOfAttorneySpecific: true,
		ftypes.DocPowerOfAttorneyGeneral:  true,
		ftypes.DocCoverLetter:             true,
	}
	for _, kind := range ftypes.AllDocumentKinds {
		vm, err := set.Transform(kind, r, r.Fees)
		require.NoError(t, err)
		if title[kind] {
			assert.Equal(t, "Chennai", vm.Office, kind)
		} else {
			assert.Equal(t, "CHENNAI", vm.Office, kind)
		}
	}
}

func TestInventorshipDeclarationSubstitutesApplicants(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()
	r.InventorsSameAsApplicant = true

	vm, err := set.Transform(ftypes.DocInventorshipDeclaration, r, r.Fees)
	require.NoError(t, err)
	require.NotEmpty(t, vm.Tables)
	assert.Equal(t, "Acme Pharma Ltd", vm.Tables[0].Rows[0][0])
	assert.True(t, vm.IncludeClauses["inventors_same_as_applicant"])
}

func TestPowerOfAttorneyVariants(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()

	specific, err := set.Transform(ftypes.DocPowerOfAttorneySpecific, r, r.Fees)
	require.NoError(t, err)
	general, err := set.Transform(ftypes.DocPowerOfAttorneyGeneral, r, r.Fees)
	require.NoError(t, err)

	assert.False(t, specific.IncludeClauses["general_authority"])
	assert.True(t, general.IncludeClauses["general_authority"])

	// Both carry the firm's agent roster, not anything from the record.
	for _, vm := range []ViewModel{specific, general} {
		require.NotEmpty(t, vm.Tables)
		assert.Equal(t, [][]string{
			{"K. Rao", "IN/PA-1234"},
			{"S. Menon", "IN/PA-5678"},
		}, vm.Tables[0].Rows)
	}
}

func TestMalformedInputDegradesToPlaceholders(t *testing.T) {
	set := NewSet(testProfile())
	r := filing.NewApplicationRecord("")

	vm, err := set.Transform(ftypes.DocGrantRequest, r, r.Fees)
	require.NoError(t, err)
	assert.False(t, vm.IsEmpty())
	assert.Equal(t, blank, fieldValue(vm, "Docket Number"))
	assert.Equal(t, "GrantRequest_Patent", vm.ArtifactBase)
}

func TestArtifactBaseNaming(t *testing.T) {
	assert.Equal(t, "CoverLetter_IN-2024-0042", ArtifactBase(ftypes.DocCoverLetter, "IN-2024-0042"))
	assert.Equal(t, "StatusReport_Patent", ArtifactBase(ftypes.DocStatusReport, ""))
}

func TestStatusReportNextActions(t *testing.T) {
	r := testRecord()
	r.RequestExamination = false
	r.Priorities[0].PriorityDate = nil

	actions := nextActions(r)
	assert.Contains(t, actions, "Next action: file the request for examination within the statutory period.")
	assert.Contains(t, actions, "Next action: obtain the filing dates of the claimed priority applications.")

	r.RequestExamination = true
	r.PriorityClaimed = false
	assert.Equal(t, []string{"No actions are currently pending on this filing."}, nextActions(r))
}

func TestTransformersAreIdempotent(t *testing.T) {
	set := NewSet(testProfile())
	r := testRecord()

	first, err := set.Transform(ftypes.DocGrantRequest, r, r.Fees)
	require.NoError(t, err)
	second, err := set.Transform(ftypes.DocGrantRequest, r, r.Fees)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// fieldValue returns the first matching label's value, or "".
func fieldValue(vm ViewModel, labels ...string) string {
	for _, f := range vm.Fields {
		for _, l := range labels {
			if f.Label == l {
				return f.Value
			}
		}
	}
	return ""
}
