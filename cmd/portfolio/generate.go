package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	g "maragu.dev/gomponents"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/models"
	"dconn.dev/portfolio/internal/views"
)

const (
	staticDir    = "static"
	staticSheet  = "static/motion.css"
	staticImage  = "static/placeholder-400x300.svg"
	placeholderW = 400
	placeholderH = 300
)

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Export the portfolio as static HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := generateSite(args[0], cfg.Site)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "  Created %s\n", f)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Done!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// generateSite writes one page per section plus the shared stylesheet and
// placeholder image. It returns the written paths relative to outputDir
func generateSite(outputDir string, site config.SiteConfig) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(outputDir, staticDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	projects := models.SeedProjects()
	for i := range projects {
		if projects[i].Image == models.PlaceholderImage {
			projects[i].Image = staticImage
		}
	}

	var written []string
	write := func(name string, node g.Node) error {
		f, err := os.Create(filepath.Join(outputDir, name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", name, err)
		}
		if err := node.Render(f); err != nil {
			f.Close()
			return fmt.Errorf("rendering %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
		written = append(written, name)
		return nil
	}

	for _, s := range models.KnownSections() {
		page := views.Page(views.PageData{
			Title:          site.Title,
			Active:         s,
			Projects:       projects,
			Static:         true,
			StylesheetHref: staticSheet,
			TailwindURL:    site.TailwindURL,
		})
		if err := write(views.StaticPath(s), page); err != nil {
			return written, err
		}
	}

	if err := os.WriteFile(filepath.Join(outputDir, staticSheet), []byte(views.Stylesheet()), 0644); err != nil {
		return written, fmt.Errorf("writing %s: %w", staticSheet, err)
	}
	written = append(written, staticSheet)

	if err := write(staticImage, views.PlaceholderSVG(placeholderW, placeholderH)); err != nil {
		return written, err
	}

	return written, nil
}
