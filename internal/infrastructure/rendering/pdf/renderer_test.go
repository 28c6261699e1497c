package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

func TestRenderProducesPDF(t *testing.T) {
	r := NewRenderer(documents.FirmProfile{
		FirmName:     "Rao & Menon IP Services",
		AddressLines: []string{"4th Floor, Prestige Towers", "Bengaluru 560001"},
	})

	vm := documents.ViewModel{
		Kind:         ftypes.DocCoverLetter,
		ArtifactBase: "CoverLetter_D-50",
		Heading:      "Covering Letter",
		Office:       "Chennai",
		Fields:       []documents.Field{{Label: "Our Ref", Value: "D-50"}},
		Tables: []documents.Table{{
			Title:   "Enclosures",
			Columns: []string{"Document", "Copies"},
			Rows:    [][]string{{"Complete Specification", "1"}},
		}},
		Paragraphs: []string{"Dear Sir/Madam,"},
	}

	artifact, err := r.Render(context.Background(), vm)
	require.NoError(t, err)
	assert.Equal(t, "CoverLetter_D-50.pdf", artifact.Name)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.True(t, bytes.HasPrefix(artifact.Data, []byte("%PDF")), "output starts with the PDF magic")
}

func TestRenderEmptySentinel(t *testing.T) {
	r := NewRenderer(documents.FirmProfile{})

	artifact, err := r.Render(context.Background(), documents.EmptyResult(ftypes.DocGrantRequest))
	require.NoError(t, err)
	assert.Equal(t, "GrantRequest_Patent.pdf", artifact.Name)
	assert.NotEmpty(t, artifact.Data)
}
