package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"backoffice/internal/domain/payroll"
)

type draftFile struct {
	Employee   payroll.Employee        `json:"employee"`
	MonthYear  string                  `json:"monthYear"`
	Attendance []payroll.AttendanceDay `json:"attendance"`
	Advances   []payroll.Advance       `json:"advances"`
}

func newPayrollCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Payroll calculations",
	}

	var file, active string
	recompute := &cobra.Command{
		Use:   "recompute",
		Short: "Compute the payroll breakdown of a payroll form",
		Example: `  calc payroll recompute --file form.json
  calc payroll recompute --file form.json --active shortWeekDays`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field := payroll.ParseField(active)
			if active != "" && field == payroll.FieldNone {
				return fmt.Errorf("unknown active field %q", active)
			}
			var form payroll.Form
			if err := decodeInput(cmd, file, &form); err != nil {
				return err
			}
			res := payroll.NewService(opts.logger).Recompute(cmd.Context(), form, field)
			return writeJSON(cmd, res)
		},
	}
	recompute.Flags().StringVarP(&file, "file", "f", "", "Payroll form JSON file")
	recompute.Flags().StringVar(&active, "active", "", "Field being edited: workedHours, overtimeHours, shortWeekDays or shortTimeHours")

	var draftPath string
	draft := &cobra.Command{
		Use:   "draft",
		Short: "Prefill a payroll form from an employee, attendance and advances",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in draftFile
			if err := decodeInput(cmd, draftPath, &in); err != nil {
				return err
			}
			input, res, err := payroll.NewService(opts.logger).Draft(cmd.Context(), in.Employee, in.MonthYear, in.Attendance, in.Advances)
			if err != nil {
				return err
			}
			return writeJSON(cmd, map[string]any{"input": input, "result": res})
		},
	}
	draft.Flags().StringVarP(&draftPath, "file", "f", "", "Draft JSON file with employee, monthYear, attendance and advances")

	cmd.AddCommand(recompute, draft)
	return cmd
}
