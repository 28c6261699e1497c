// Package filing defines the shared enumerations of the patent-filing domain:
// receiving offices, application routes, applicant fee categories, and the
// prescribed document kinds.  They live under pkg/types so that the domain,
// application, and interface layers can share them without import cycles.
package filing

import "strings"

// Jurisdiction identifies the receiving patent office for an application.
type Jurisdiction string

const (
	JurisdictionNewDelhi Jurisdiction = "new_delhi"
	JurisdictionMumbai   Jurisdiction = "mumbai"
	JurisdictionKolkata  Jurisdiction = "kolkata"
	JurisdictionChennai  Jurisdiction = "chennai"
)

// ParseJurisdiction maps boundary input onto a supported office.  Unknown or
// empty values map to New Delhi, the head office.
func ParseJurisdiction(s string) Jurisdiction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mumbai", "bombay":
		return JurisdictionMumbai
	case "kolkata", "calcutta":
		return JurisdictionKolkata
	case "chennai", "madras":
		return JurisdictionChennai
	default:
		return JurisdictionNewDelhi
	}
}

// TitleLabel returns the office label in title case ("New Delhi"), the form
// used by request-style documents.
func (j Jurisdiction) TitleLabel() string {
	switch j {
	case JurisdictionMumbai:
		return "Mumbai"
	case JurisdictionKolkata:
		return "Kolkata"
	case JurisdictionChennai:
		return "Chennai"
	default:
		return "New Delhi"
	}
}

// UpperLabel returns the office label in upper case ("NEW DELHI"), the form
// used by attestation-style documents.  The casing split across document
// kinds is prescribed, not stylistic.
func (j Jurisdiction) UpperLabel() string {
	return strings.ToUpper(j.TitleLabel())
}

// ApplicationType identifies the route by which an application arrives.
type ApplicationType string

const (
	TypeOrdinary         ApplicationType = "ordinary"
	TypeConvention       ApplicationType = "convention"
	TypePCTNationalPhase ApplicationType = "pct_national_phase"
)

// ParseApplicationType maps boundary input onto a route, defaulting to ordinary.
func ParseApplicationType(s string) ApplicationType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "convention":
		return TypeConvention
	case "pct_national_phase", "pct", "pct-national-phase":
		return TypePCTNationalPhase
	default:
		return TypeOrdinary
	}
}

// ApplicantCategory classifies the applicant for fee-tier selection.
type ApplicantCategory string

const (
	CategoryNaturalPerson ApplicantCategory = "natural_person"
	CategorySmallEntity   ApplicantCategory = "small_entity"
	CategoryStartup       ApplicantCategory = "startup"
	CategoryEducation     ApplicantCategory = "education"
	CategoryOther         ApplicantCategory = "other"
)

// ParseApplicantCategory maps boundary input onto a category, defaulting to
// natural person.
func ParseApplicantCategory(s string) ApplicantCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small_entity", "small entity":
		return CategorySmallEntity
	case "startup":
		return CategoryStartup
	case "education", "educational_institution":
		return CategoryEducation
	case "other", "large_entity":
		return CategoryOther
	default:
		return CategoryNaturalPerson
	}
}

// DocumentKind enumerates the ten prescribed documents derivable from a
// single application record.
type DocumentKind string

const (
	DocGrantRequest             DocumentKind = "grant_request"
	DocCompleteSpecification    DocumentKind = "complete_specification"
	DocStatementAndUndertaking  DocumentKind = "statement_undertaking"
	DocInventorshipDeclaration  DocumentKind = "inventorship_declaration"
	DocPublicationRequest       DocumentKind = "publication_request"
	DocExaminationRequest       DocumentKind = "examination_request"
	DocPowerOfAttorneySpecific  DocumentKind = "poa_specific"
	DocPowerOfAttorneyGeneral   DocumentKind = "poa_general"
	DocCoverLetter              DocumentKind = "cover_letter"
	DocStatusReport             DocumentKind = "status_report"
)

// AllDocumentKinds lists every document kind in presentation order.
var AllDocumentKinds = []DocumentKind{
	DocGrantRequest,
	DocCompleteSpecification,
	DocStatementAndUndertaking,
	DocInventorshipDeclaration,
	DocPublicationRequest,
	DocExaminationRequest,
	DocPowerOfAttorneySpecific,
	DocPowerOfAttorneyGeneral,
	DocCoverLetter,
	DocStatusReport,
}

// FormName returns the artifact base name for a document kind, used in the
// "<FormName>_<docket>.<ext>" artifact naming convention.
func (k DocumentKind) FormName() string {
	switch k {
	case DocGrantRequest:
		return "GrantRequest"
	case DocCompleteSpecification:
		return "CompleteSpecification"
	case DocStatementAndUndertaking:
		return "StatementAndUndertaking"
	case DocInventorshipDeclaration:
		return "InventorshipDeclaration"
	case DocPublicationRequest:
		return "PublicationRequest"
	case DocExaminationRequest:
		return "ExaminationRequest"
	case DocPowerOfAttorneySpecific:
		return "PowerOfAttorneySpecific"
	case DocPowerOfAttorneyGeneral:
		return "PowerOfAttorneyGeneral"
	case DocCoverLetter:
		return "CoverLetter"
	case DocStatusReport:
		return "StatusReport"
	default:
		return "Document"
	}
}

// ParseDocumentKind maps boundary input onto a DocumentKind; the boolean
// reports whether the input named a known kind.
func ParseDocumentKind(s string) (DocumentKind, bool) {
	k := DocumentKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllDocumentKinds {
		if k == known {
			return known, true
		}
	}
	return "", false
}
