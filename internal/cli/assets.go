package cli

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/becked/pinacotheca/internal/extract"
	"github.com/becked/pinacotheca/internal/unity"
)

var (
	flagAssetType       string
	flagAssetFilter     string
	flagAssetLimit      int
	flagPreviewExcluded bool
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Inspect 2D objects in the game data",
	Long: `Lists Sprite and Texture2D objects straight from the game data
without extracting anything. Useful for tuning exclusion patterns and
exploring what the bundles contain.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

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
		fmt.Printf("%s %s\n\n", StyleHeader.Render("Game data:"), StylePath.Render(gameData))

		logger.Info("Loading asset index")
		assets, err := unity.List(cmd.Context(), gameData)
		if err != nil {
			return err
		}

		if flagPreviewExcluded {
			return previewExcluded(assets, cfg.Exclude)
		}
		return listAssets(assets)
	},
}

func init() {
	assetsCmd.Flags().StringVarP(&flagGameData, "game-data", "g", "", "game data directory (default: auto-detect)")
	assetsCmd.Flags().StringVarP(&flagAssetType, "type", "t", "all", "asset type: Sprite, Texture2D or all")
	assetsCmd.Flags().StringVarP(&flagAssetFilter, "filter", "f", "", "filter names by case-insensitive regex")
	assetsCmd.Flags().IntVarP(&flagAssetLimit, "limit", "n", 0, "limit output to N results")
	assetsCmd.Flags().BoolVar(&flagPreviewExcluded, "preview-excluded", false, "show which sprites the exclusion patterns would skip")
	RootCmd.AddCommand(assetsCmd)
}

// listAssets prints a per-type summary, or the matching objects with
// dimensions when a concrete type is requested.
func listAssets(assets []unity.Asset) error {
	if flagAssetType == "all" {
		counts := make(map[string]int)
		for _, a := range assets {
			counts[a.Type]++
		}
		types := make([]string, 0, len(counts))
		for t := range counts {
			types = append(types, t)
		}
		sort.Strings(types)

		fmt.Println(StyleHeader.Render("2D asset summary:"))
		for _, t := range types {
			fmt.Printf("  %s %s\n", StyleCategory.Render(t+":"), StyleCount.Render(fmt.Sprintf("%d", counts[t])))
		}
		fmt.Printf("\n%s %s\n", StyleDim.Render("Total:"), StyleCount.Render(fmt.Sprintf("%d", len(assets))))
		return nil
	}

	var filter *regexp.Regexp
	if flagAssetFilter != "" {
		re, err := regexp.Compile(`(?i)` + flagAssetFilter)
		if err != nil {
			return fmt.Errorf("invalid filter: %w", err)
		}
		filter = re
	}

	var matched []unity.Asset
	for _, a := range assets {
		if a.Type != flagAssetType {
			continue
		}
		if filter != nil && !filter.MatchString(a.Name) {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool {
		return strings.ToLower(matched[i].Name) < strings.ToLower(matched[j].Name)
	})
	if flagAssetLimit > 0 && len(matched) > flagAssetLimit {
		matched = matched[:flagAssetLimit]
	}

	fmt.Printf("%s\n", StyleHeader.Render(fmt.Sprintf("%s assets (%d found):", flagAssetType, len(matched))))
	for _, a := range matched {
		fmt.Printf("  %-50s %s\n", a.Name, StyleDim.Render(fmt.Sprintf("%dx%d", a.Width, a.Height)))
	}
	return nil
}

// previewExcluded shows which sprite names the exclusion patterns match,
// so patterns can be tuned before a long extraction run.
func previewExcluded(assets []unity.Asset, extra []string) error {
	exclude, err := extract.LoadExcludePatterns(extract.ExcludeFile, extra)
	if err != nil {
		return err
	}
	if exclude == nil {
		fmt.Println("No exclusion patterns configured")
		return nil
	}
	fmt.Printf("%s %s\n\n", StyleHeader.Render("Pattern:"), StyleDim.Render(exclude.String()))

	seen := make(map[string]bool)
	var matches []string
	for _, a := range assets {
		if a.Type == "Sprite" && !seen[a.Name] && exclude.MatchString(a.Name) {
			seen[a.Name] = true
			matches = append(matches, a.Name)
		}
	}
	sort.Strings(matches)

	fmt.Printf("%s\n", StyleHeader.Render(fmt.Sprintf("Would exclude %d sprites:", len(matches))))
	for _, name := range matches {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
