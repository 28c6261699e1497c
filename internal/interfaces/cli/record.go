package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/FilingDesk/internal/domain/filing"
)

// NewRecordCmd creates the "record" command group for working with record
// files: scaffolding a fresh record, inspecting one, and applying field edits
// with the same semantics as the API.
func NewRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Create and edit application record files",
	}
	cmd.AddCommand(
		newRecordNewCmd(),
		newRecordShowCmd(),
		newRecordSetCmd(),
	)
	return cmd
}

func newRecordNewCmd() *cobra.Command {
	var docket string

	cmd := &cobra.Command{
		Use:   "new PATH",
		Short: "Write a fresh application record to a JSON file",
		Long: "Creates a record with one blank entry in each repeated list and the fee\n" +
			"breakdown derived from the defaults, and writes it to PATH.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record := filing.NewApplicationRecord(docket)
			if err := saveRecord(args[0], record); err != nil {
				return err
			}
			PrintSuccess(cmd, fmt.Sprintf("record %s written to %s", record.DocketNumber, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVar(&docket, "docket", "", "docket number for the new record")
	_ = cmd.MarkFlagRequired("docket")
	return cmd
}

func newRecordShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show PATH",
		Short: "Print a record with its recomputed fee breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, record)
		},
	}
}

func newRecordSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set PATH FIELD VALUE",
		Short: "Set one scalar field of a record file",
		Long: "Applies one named field edit with the same coercion and fee-recomputation\n" +
			"semantics as the API, then writes the record back to PATH.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, field, value := args[0], args[1], args[2]

			record, err := loadRecord(path)
			if err != nil {
				return err
			}

			// Route the edit through the domain service so field names,
			// coercion, and fee dependence behave exactly as over HTTP.
			repo := filing.NewMemoryRepository()
			if err := repo.Save(cmd.Context(), record); err != nil {
				return err
			}
			svc := filing.NewService(repo, nil, nil)
			updated, err := svc.SetField(cmd.Context(), record.DocketNumber, field, value)
			if err != nil {
				return err
			}

			if err := saveRecord(path, updated); err != nil {
				return err
			}
			PrintSuccess(cmd, fmt.Sprintf("%s = %q (total fee now %d)", field, value, updated.Fees.TotalFee))
			return nil
		},
	}
}
