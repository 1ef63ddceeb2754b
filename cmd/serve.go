package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/sophiafu/portfolio/internal/store"
	"github.com/sophiafu/portfolio/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Port to listen on (overrides PORT env var)")
}

func runServer(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Value.String() != "" {
		cfg.Port = f.Value.String()
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer st.Close()

	srv, err := web.New(cfg, catalog, st)
	if err != nil {
		return err
	}

	log.Printf("Serving %d projects on :%s", len(catalog.Projects), cfg.Port)
	return srv.Run()
}
