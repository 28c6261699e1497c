package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/turtacn/FilingDesk/internal/domain/fees"
)

// feesResult wraps a fee breakdown for the output helpers.  JSON output emits
// the breakdown itself; table and text output show one row per component.
type feesResult struct {
	DocketNumber string            `json:"docket_number"`
	Category     string            `json:"applicant_category"`
	Breakdown    fees.FeeBreakdown `json:"fee_breakdown"`
}

func (r feesResult) TableHeaders() []string {
	return []string{"Component", "Count", "Amount (INR)"}
}

func (r feesResult) TableRows() [][]string {
	b := r.Breakdown
	return [][]string{
		{"Basic filing fee", "", strconv.FormatInt(b.BasicFee, 10)},
		{"Extra pages", strconv.Itoa(b.ExtraPageCount), strconv.FormatInt(b.ExtraPageFee, 10)},
		{"Extra claims", strconv.Itoa(b.ExtraClaimCount), strconv.FormatInt(b.ExtraClaimFee, 10)},
		{"Extra priorities", strconv.Itoa(b.ExtraPriorityCount), strconv.FormatInt(b.ExtraPriorityFee, 10)},
		{"Examination fee", "", strconv.FormatInt(b.ExaminationFee, 10)},
		{"Sequence listing fee", "", strconv.FormatInt(b.SequenceFee, 10)},
		{"Total", "", strconv.FormatInt(b.TotalFee, 10)},
	}
}

func (r feesResult) String() string {
	return fmt.Sprintf("Docket %s (%s)\n%s",
		r.DocketNumber, r.Category, FormatTable(r.TableHeaders(), r.TableRows()))
}

// NewFeesCmd creates the "fees" command: derive the statutory fee breakdown
// for a record file.
func NewFeesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fees RECORD",
		Short: "Compute the official fee breakdown for a record",
		Long: "Reads an application record from a JSON file, sanitizes it, and prints the\n" +
			"derived fee breakdown.  The stored breakdown in the file is ignored; fees are\n" +
			"always recomputed from the dependent fields.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := loadRecord(args[0])
			if err != nil {
				return err
			}
			return PrintResult(cmd, feesResult{
				DocketNumber: record.DocketNumber,
				Category:     string(record.ApplicantCategory),
				Breakdown:    record.Fees,
			})
		},
	}
}
