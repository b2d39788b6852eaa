package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/becked/pinacotheca/internal/config"
	"github.com/becked/pinacotheca/internal/gallery"
	"github.com/becked/pinacotheca/internal/manifest"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Rebuild the manifest and gallery page from extracted sprites",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		return buildCatalog(outputDir(cmd, cfg), cfg)
	},
}

func init() {
	RootCmd.AddCommand(galleryCmd)
}

// buildCatalog scans the extracted tree, writes manifest.json and
// renders index.html.
func buildCatalog(output string, cfg config.Config) error {
	b := &manifest.Builder{Root: output, ThumbSize: cfg.ThumbSize, Logger: logger}
	m, err := b.Build()
	if err != nil {
		return err
	}
	if m.Total == 0 {
		return fmt.Errorf("no sprites found in %s", output)
	}
	if err := manifest.Write(output, m); err != nil {
		return err
	}

	r := &gallery.Renderer{Root: output, Title: "Old World Sprites", Logger: logger}
	if err := r.Render(m); err != nil {
		return err
	}

	fmt.Printf("%s %s %s\n",
		StyleHeader.Render("Gallery ready:"),
		StylePath.Render(output+"/index.html"),
		StyleDim.Render(fmt.Sprintf("(%d sprites, %d categories)", m.Total, len(m.Categories))),
	)
	return nil
}
