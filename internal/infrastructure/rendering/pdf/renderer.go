// Package pdf renders document view models into PDF artifacts with gofpdf.
// The renderer applies layout only; every string it receives is final
// presentation text.
package pdf

import (
	"bytes"
	"context"

	"github.com/jung-kurt/gofpdf"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

const (
	pageWidth   = 190.0
	labelWidth  = 70.0
	lineHeight  = 6.0
	headingSize = 14.0
	bodySize    = 10.0
)

// Renderer implements documents.Renderer for PDF output.
type Renderer struct {
	profile documents.FirmProfile
}

// NewRenderer constructs a PDF renderer carrying the firm letterhead.
func NewRenderer(profile documents.FirmProfile) *Renderer {
	return &Renderer{profile: profile}
}

// Render lays the view model out as a single PDF artifact.
func (r *Renderer) Render(_ context.Context, vm documents.ViewModel) (*documents.Artifact, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	r.letterhead(pdf)

	pdf.SetFont("Arial", "B", headingSize)
	pdf.CellFormat(pageWidth, 10, vm.Heading, "", 1, "C", false, 0, "")
	if vm.Office != "" {
		pdf.SetFont("Arial", "", bodySize)
		pdf.CellFormat(pageWidth, lineHeight, "The Patent Office, "+vm.Office, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "", bodySize)
	for _, f := range vm.Fields {
		pdf.SetFont("Arial", "B", bodySize)
		pdf.CellFormat(labelWidth, lineHeight, f.Label, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", bodySize)
		pdf.MultiCell(pageWidth-labelWidth, lineHeight, f.Value, "", "L", false)
	}

	for _, table := range vm.Tables {
		r.table(pdf, table)
	}

	for _, p := range vm.Paragraphs {
		pdf.Ln(3)
		pdf.SetFont("Arial", "", bodySize)
		pdf.MultiCell(pageWidth, lineHeight, p, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeRenderFailed, "writing pdf for "+string(vm.Kind))
	}

	return &documents.Artifact{
		Name:        vm.ArtifactBase + ".pdf",
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}

func (r *Renderer) letterhead(pdf *gofpdf.Fpdf) {
	if r.profile.FirmName == "" {
		return
	}
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pageWidth, lineHeight, r.profile.FirmName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
	for _, line := range r.profile.AddressLines {
		pdf.CellFormat(pageWidth, 4, line, "", 1, "L", false, 0, "")
	}
	contact := ""
	if r.profile.Phone != "" {
		contact = r.profile.Phone
	}
	if r.profile.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += r.profile.Email
	}
	if contact != "" {
		pdf.CellFormat(pageWidth, 4, contact, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func (r *Renderer) table(pdf *gofpdf.Fpdf, table documents.Table) {
	pdf.Ln(3)
	if table.Title != "" {
		pdf.SetFont("Arial", "B", bodySize)
		pdf.CellFormat(pageWidth, lineHeight, table.Title, "", 1, "L", false, 0, "")
	}
	if len(table.Columns) == 0 {
		return
	}
	colWidth := pageWidth / float64(len(table.Columns))

	pdf.SetFont("Arial", "B", 9)
	for _, col := range table.Columns {
		pdf.CellFormat(colWidth, lineHeight, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range table.Rows {
		for i := 0; i < len(table.Columns); i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, lineHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
