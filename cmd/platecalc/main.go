package main

import (
	"os"

	"github.com/2beens/fitcoach/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "platecalc",
		Short:         "Macro totals and progress for a plate or a client day",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logging.Setup(logging.LoggerSetupParams{
				LogLevel: logLevel,
			})
			log.SetOutput(cmd.ErrOrStderr())
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level [trace | debug | info | warn | error]")

	rootCmd.AddCommand(newPlateCmd())
	rootCmd.AddCommand(newDayCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("platecalc: %s", err)
		os.Exit(1)
	}
}
