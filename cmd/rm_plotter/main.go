package main

import (
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/user/rm_plotter_go/internal/parser"
)

// rootCmd plots the results written by the simulator.
var rootCmd = &cobra.Command{
	Use:   "rm_plotter",
	Short: "Plot Reed-Muller (1, m) decoding success against channel error probability",
	Long: `rm_plotter reads simulation_results.json from the working directory,
draws one curve per code order m and saves reed_muller_results.png.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return NewApp(cmd.OutOrStdout()).Run()
	},
}

func setupLogging() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
}

func main() {
	setupLogging()

	if err := rootCmd.Execute(); err != nil {
		var missing *parser.MissingInputError
		if !errors.As(err, &missing) {
			log.Errorf("Error running rm_plotter: %v", err)
		}
		os.Exit(1)
	}
}
