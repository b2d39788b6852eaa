package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/becked/pinacotheca/internal/extract"
	"github.com/becked/pinacotheca/internal/unity"
)

var (
	flagGameData  string
	flagNoGallery bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract sprites from the game data into category folders",
	Long: `Extracts every 2D sprite from the game's asset bundles, classifies
each by name, and writes it under <output>/sprites/<category>/. Unless
--no-gallery is given, the manifest and gallery page are rebuilt
afterwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		output := outputDir(cmd, cfg)

		if !unity.IsAvailable() {
			return fmt.Errorf("python3 with UnityPy is required (pip install UnityPy)")
		}

		override := flagGameData
		if override == "" {
			override = cfg.GameData
		}
		gameData, err := extract.ResolveGameData(override)
		if err != nil {
			return err
		}

		exclude, err := extract.LoadExcludePatterns(extract.ExcludeFile, cfg.Exclude)
		if err != nil {
			return err
		}

		e := &extract.Extractor{
			GameData: gameData,
			Output:   output,
			Exclude:  exclude,
			Dumper:   extract.DumperFunc(unity.Dump),
			Logger:   logger,
		}
		summary, err := e.Run(cmd.Context())
		if err != nil {
			return err
		}

		if flagNoGallery {
			return nil
		}
		if summary.Total() == 0 && summary.Skipped == 0 {
			logger.Warn("Nothing extracted, skipping gallery generation")
			return nil
		}
		return buildCatalog(output, cfg)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&flagGameData, "game-data", "g", "", "game data directory (default: auto-detect)")
	extractCmd.Flags().BoolVar(&flagNoGallery, "no-gallery", false, "skip manifest and gallery generation")
	RootCmd.AddCommand(extractCmd)
}
