// Package documents implements the document transformation layer: ten pure
// transformers that reshape one ApplicationRecord plus its single shared
// FeeBreakdown into per-document view models.  The layer has exactly one
// defined failure path, a nil record yielding the EmptyResult sentinel, and
// every other malformed input degrades to placeholder text.  Rendering a
// view model into bytes is the Renderer's job, outside this package's logic.
package documents

import (
	"context"

	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// Field is one pre-formatted label/value pair on a document.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is a titled grid of pre-formatted strings.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ViewModel is the document-kind-specific bag of pre-formatted strings and
// include-clause flags consumed by the Renderer.  Every string is final
// presentation text; the Renderer applies layout, never formatting.
type ViewModel struct {
	Kind       ftypes.DocumentKind `json:"kind"`
	TemplateID string              `json:"template_id"`

	// ArtifactBase is the artifact name without extension, following the
	// "<FormName>_<docket-or-'Patent'>" convention.  The Renderer appends
	// its format's extension.
	ArtifactBase string `json:"artifact_base"`

	// Empty marks the EmptyResult sentinel returned when no record was
	// supplied; renderers show a fixed "no application data" placeholder.
	Empty bool `json:"empty"`

	// Heading is the document's display title; Office is the receiving
	// office label in this document's prescribed casing.
	Heading string `json:"heading"`
	Office  string `json:"office,omitempty"`

	Fields     []Field  `json:"fields,omitempty"`
	Tables     []Table  `json:"tables,omitempty"`
	Paragraphs []string `json:"paragraphs,omitempty"`

	// IncludeClauses flags optional boilerplate clauses that apply to this
	// record (e.g. the PCT recital only on national-phase filings).
	IncludeClauses map[string]bool `json:"include_clauses,omitempty"`
}

// IsEmpty reports whether the view model is the EmptyResult sentinel.
func (vm ViewModel) IsEmpty() bool {
	return vm.Empty
}

// EmptyResult returns the sentinel view model for a document kind.  It is a
// value, not an error: callers render the fixed placeholder and move on.
func EmptyResult(kind ftypes.DocumentKind) ViewModel {
	return ViewModel{
		Kind:         kind,
		TemplateID:   templateID(kind),
		ArtifactBase: ArtifactBase(kind, ""),
		Empty:        true,
		Heading:      kind.FormName(),
		Paragraphs:   []string{"No application data."},
	}
}

// ArtifactBase builds the artifact base name for a document kind and docket
// number.  A blank docket substitutes the literal "Patent".
func ArtifactBase(kind ftypes.DocumentKind, docketNumber string) string {
	if docketNumber == "" {
		docketNumber = "Patent"
	}
	return kind.FormName() + "_" + docketNumber
}

// templateID names the Renderer template for a kind.  Template identifiers
// are stable contract strings; renderers map them to layouts.
func templateID(kind ftypes.DocumentKind) string {
	return "filingdesk/" + string(kind) + "/v1"
}

// Artifact is a rendered document: final bytes plus naming metadata.
type Artifact struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Renderer consumes a view model and produces a document artifact.  It is an
// external collaborator of the core: implementations live under
// internal/infrastructure/rendering.
type Renderer interface {
	Render(ctx context.Context, vm ViewModel) (*Artifact, error)
}

// FirmProfile is the injected letterhead configuration shared by every
// document: firm identity, signing place, and the authorized agent roster
// named on powers of attorney.  It replaces the per-document constants the
// legacy system duplicated.
type FirmProfile struct {
	FirmName     string   `mapstructure:"firm_name"`
	AddressLines []string `mapstructure:"address_lines"`
	Phone        string   `mapstructure:"phone"`
	Email        string   `mapstructure:"email"`
	SigningPlace string   `mapstructure:"signing_place"`
	Agents       []Agent  `mapstructure:"agents"`
}

// Agent is one patent agent authorized to act for applicants.
type Agent struct {
	Name               string `mapstructure:"name"`
	RegistrationNumber string `mapstructure:"registration_number"`
}
