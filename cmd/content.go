package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sophiafu/portfolio/internal/content"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect site content",
}

var contentCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a content file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.ContentFile = args[0]
		}

		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		source := cfg.ContentFile
		if source == "" {
			source = "built-in content"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d projects, %d experiences, %d artworks)\n",
			source, len(catalog.Projects), len(catalog.Experiences), len(catalog.Artworks))
		return nil
	},
}

var contentProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects with their case study sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, p := range catalog.Projects {
			var ids []string
			for _, s := range content.CaseStudySections(p) {
				ids = append(ids, s.ID)
			}
			fmt.Fprintf(out, "%02d %-16s %s\n", i+1, p.ID, p.Title)
			fmt.Fprintf(out, "   %s\n", strings.Join(ids, ", "))
		}
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentCheckCmd)
	contentCmd.AddCommand(contentProjectsCmd)
}
