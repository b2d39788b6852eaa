package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated gallery locally",
	Long: `Serves the output directory over HTTP for previewing the gallery
before deploying it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		output := outputDir(cmd, cfg)

		if _, err := os.Stat(output); err != nil {
			return fmt.Errorf("output directory not found: %s (run extract first)", output)
		}

		fmt.Printf("%s %s\n",
			StyleHeader.Render("Serving gallery at"),
			StylePath.Render("http://localhost"+flagAddr),
		)
		logger.Info("Press Ctrl+C to stop", "dir", output)
		return http.ListenAndServe(flagAddr, http.FileServer(http.Dir(output)))
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "listen address")
	RootCmd.AddCommand(serveCmd)
}
