package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sophiafu/portfolio/internal/config"
	"github.com/sophiafu/portfolio/internal/content"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long:  "portfolio serves the personal site: projects, case studies, art, resume and the admin dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a YAML content file (overrides CONTENT_FILE env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DATABASE_PATH env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(contentCmd)
}

// resolveConfig reads the environment and applies flag overrides.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		cfg.ContentFile = p
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DatabasePath = p
	}
	return cfg, nil
}

// loadCatalog returns the configured content, or the built-in content when
// no file is set.
func loadCatalog(cfg config.Config) (*content.Catalog, error) {
	if cfg.ContentFile == "" {
		return content.Default(), nil
	}
	return content.Load(cfg.ContentFile)
}
