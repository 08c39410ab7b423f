package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

// options общие флаги всех подкоманд
type options struct {
	input    string
	logLevel string
	log      *logger.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "slotctl",
		Short: "Offline runner for the availability engine",
		Long: `slotctl reads a JSON document with windows and booked slots, runs one
engine operation on it and prints the result as JSON.

Document format:
  {
    "windows": [{"id": "w1", "start": "2025-10-15T09:00:00Z", "end": "2025-10-15T12:00:00Z", "price": 1500}],
    "booked":  [{"start": "2025-10-15T10:00:00Z", "end": "2025-10-15T11:00:00Z"}]
  }

Examples:
  slotctl generate --duration 60 -i day.json
  cat day.json | slotctl pick --date 2025-10-15 --click 0.42 --duration 60
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.NewWithWriter(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.input, "input", "i", "-", "Input document path, - for stdin")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newMergeCmd(opts),
		newGenerateCmd(opts),
		newValidateCmd(opts),
		newPickCmd(opts),
		newExpandCmd(opts),
	)

	return root
}
