package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"backoffice/internal/domain/commission"
)

func newCommissionCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commission",
		Short: "Sale commission calculations",
	}

	var (
		file      string
		branch    string
		target    float64
		employees string
	)

	loadRecord := func(cmd *cobra.Command) (commission.Record, commission.DirectoryMap, error) {
		dir := commission.DirectoryMap{}
		if employees != "" {
			data, err := readInput(cmd, employees)
			if err != nil {
				return commission.Record{}, nil, err
			}
			if err := json.Unmarshal(data, &dir); err != nil {
				return commission.Record{}, nil, err
			}
		}
		data, err := readInput(cmd, file)
		if err != nil {
			return commission.Record{}, nil, err
		}
		rec, err := commission.Decode(data, dir)
		return rec, dir, err
	}

	recompute := &cobra.Command{
		Use:     "recompute",
		Short:   "Spread the achieved target over a commission sheet and total it",
		Example: `  calc commission recompute --file sheet.json --target 25000 --branch "F-6"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, _, err := loadRecord(cmd)
			if err != nil {
				return err
			}
			out, summary := commission.NewService(opts.logger).Recompute(cmd.Context(), rec, target, branch)
			return writeJSON(cmd, map[string]any{"record": out, "summary": summary})
		},
	}
	recompute.Flags().Float64Var(&target, "target", 0, "Target achieved for the commission branch")

	report := &cobra.Command{
		Use:   "report",
		Short: "Build the printable report data of a commission sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, dir, err := loadRecord(cmd)
			if err != nil {
				return err
			}
			return writeJSON(cmd, commission.NewService(opts.logger).Report(cmd.Context(), rec, branch, dir))
		},
	}

	for _, sub := range []*cobra.Command{recompute, report} {
		sub.Flags().StringVarP(&file, "file", "f", "", "Commission sheet JSON file")
		sub.Flags().StringVar(&branch, "branch", "", "Commission branch name (defaults to the sheet's)")
		sub.Flags().StringVar(&employees, "employees", "", "JSON file mapping employee ids to names")
	}

	cmd.AddCommand(recompute, report)
	return cmd
}
