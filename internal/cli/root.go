// Package cli implements the calc command: the payroll, commission and time engines run
// against JSON files from the shell.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"backoffice/internal/platform/logging"
)

var version = "dev"

type options struct {
	logLevel string
	logger   *slog.Logger
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "calc",
		Short: "Back-office payroll, commission and time calculators",
		Long: `calc runs the back-office calculation engines on JSON input.

Input is read from --file, or from stdin when --file is omitted or "-".
Results are written to stdout as indented JSON.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.New(cmd.ErrOrStderr(), logging.Options{
				Level:       opts.logLevel,
				Environment: "cli",
				Version:     version,
			})
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(newPayrollCommand(opts))
	root.AddCommand(newCommissionCommand(opts))
	root.AddCommand(newTimeCommand())
	return root
}

func Execute() {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func decodeInput(cmd *cobra.Command, path string, dst any) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}
	return nil
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
