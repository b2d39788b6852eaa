package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/becked/pinacotheca/internal/deploy"
)

var (
	flagBranch  string
	flagMessage string
	flagDryRun  bool
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Publish the gallery to a hosting branch",
	Long: `Commits the output directory onto the hosting branch (gh-pages by
default) and force-pushes it, without touching the working tree. Use
--dry-run to preview the file list first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		if !deploy.IsAvailable() {
			return fmt.Errorf("git is required to deploy")
		}

		branch := flagBranch
		if branch == "" {
			branch = cfg.Branch
		}
		d := &deploy.Deployer{
			Output:  outputDir(cmd, cfg),
			Branch:  branch,
			Message: flagMessage,
			DryRun:  flagDryRun,
			Logger:  logger,
		}
		return d.Run(cmd.Context())
	},
}

func init() {
	deployCmd.Flags().StringVarP(&flagBranch, "branch", "b", "", "branch to deploy to (default: gh-pages)")
	deployCmd.Flags().StringVarP(&flagMessage, "message", "m", "Update gallery", "commit message")
	deployCmd.Flags().BoolVarP(&flagDryRun, "dry-run", "n", false, "preview without pushing")
	RootCmd.AddCommand(deployCmd)
}
