// Package cli wires the pinacotheca commands: extract, gallery, serve,
// deploy and assets.
package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/becked/pinacotheca/internal/config"
)

var logger = log.New(os.Stderr)

var (
	flagQuiet   bool
	flagVerbose bool
	flagOutput  string
)

// RootCmd is the top-level pinacotheca command.
var RootCmd = &cobra.Command{
	Use:   "pinacotheca",
	Short: "Extract and catalog sprites from Old World game data",
	Long: `Pinacotheca extracts 2D sprites from the Unity asset bundles of
Old World, sorts them into categories, and generates a searchable
static gallery ready for GitHub Pages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case flagQuiet:
			logger.SetLevel(log.WarnLevel)
		case flagVerbose:
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "only show warnings and errors")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "show debug output")
	RootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "extracted", "output directory")
	configureStyles()
}

// loadConfig reads pinacotheca.yml from the working directory, falling
// back to defaults when absent.
func loadConfig() config.Config {
	cfg, err := config.Load(config.FileName)
	if err != nil {
		logger.Warn("Ignoring unreadable config file", "file", config.FileName, "error", err)
		return config.Defaults()
	}
	return cfg
}

// outputDir resolves the output directory: flag wins over config.
func outputDir(cmd *cobra.Command, cfg config.Config) string {
	if cmd.Flags().Changed("output") || cfg.Output == "" {
		return flagOutput
	}
	return cfg.Output
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
