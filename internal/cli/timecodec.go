package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"backoffice/internal/domain/timecodec"
	"backoffice/internal/platform/lenient"
)

func newTimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Convert between H:MM and decimal hours",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "decimal VALUE",
		Short:   "Convert H:MM to decimal hours",
		Example: `  calc time decimal 8:30`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(timecodec.TimeToDecimal(args[0]), 'f', -1, 64))
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "duration VALUE",
		Short: "Read an attendance duration such as \"8h 30m\" as decimal hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(timecodec.ParseDuration(args[0]), 'f', -1, 64))
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "clock VALUE",
		Short:   "Convert decimal hours to H:MM",
		Example: `  calc time clock 8.5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), timecodec.DecimalToTime(lenient.Parse(args[0])))
			return err
		},
	})
	return cmd
}
