package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	"github.com/turtacn/FilingDesk/internal/infrastructure/rendering/pdf"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// generateOptions holds the flags of the generate command.
type generateOptions struct {
	Kind   string
	OutDir string
}

// generateResult lists the artifacts written by one invocation.
type generateResult struct {
	Docket    string   `json:"docket_number"`
	Artifacts []string `json:"artifacts"`
}

func (r generateResult) TableHeaders() []string { return []string{"Artifact"} }

func (r generateResult) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		rows = append(rows, []string{a})
	}
	return rows
}

// NewGenerateCmd creates the "generate" command: render regulatory documents
// for a record file into PDF artifacts.
func NewGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate RECORD",
		Short: "Render regulatory documents for a record as PDF files",
		Long: "Reads an application record from a JSON file and renders the prescribed\n" +
			"documents into the output directory.  Without --kind every document kind is\n" +
			"rendered; with --kind only the named one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Kind, "kind", "k", "", "document kind to render (default: all)")
	cmd.Flags().StringVarP(&opts.OutDir, "out", "d", ".", "output directory for artifacts")
	return cmd
}

func runGenerate(cmd *cobra.Command, recordPath string, opts *generateOptions) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	record, err := loadRecord(recordPath)
	if err != nil {
		return err
	}

	kinds := ftypes.AllDocumentKinds
	if opts.Kind != "" {
		kind, ok := ftypes.ParseDocumentKind(opts.Kind)
		if !ok {
			return fmt.Errorf("unknown document kind %q; run 'filingdesk kinds' for the list", opts.Kind)
		}
		kinds = []ftypes.DocumentKind{kind}
	}

	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	set := documents.NewSet(cliCtx.Config.Firm)
	renderer := pdf.NewRenderer(cliCtx.Config.Firm)

	result := generateResult{Docket: record.DocketNumber}
	for _, kind := range kinds {
		vm, err := set.Transform(kind, record, record.Fees)
		if err != nil {
			return err
		}
		artifact, err := renderer.Render(cmd.Context(), vm)
		if err != nil {
			return fmt.Errorf("rendering %s failed: %w", kind, err)
		}
		path := filepath.Join(opts.OutDir, artifact.Name)
		if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		result.Artifacts = append(result.Artifacts, path)
	}

	if cliCtx.OutputFormat == "text" {
		for _, a := range result.Artifacts {
			PrintSuccess(cmd, a)
		}
		return nil
	}
	return PrintResult(cmd, result)
}

// NewKindsCmd creates the "kinds" command: list the available document kinds.
func NewKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the available document kinds",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range ftypes.AllDocumentKinds {
				fmt.Fprintln(cmd.OutOrStdout(), string(kind))
			}
			return nil
		},
	}
}
