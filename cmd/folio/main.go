// Command folio runs and scaffolds folio portfolio sites.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A personal-portfolio engine built with Go, Echo, and templ",
	Long: `folio serves a single-page portfolio site rendered from a JSON content
document, with a contact inbox, an admin dashboard, and live content reload.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the folio version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("folio %s\n", version)
	},
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "folio.yml", "config file path")
	rootCmd.AddCommand(versionCmd)
}
