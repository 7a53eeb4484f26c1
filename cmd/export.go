package cmd

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pankajah/portfolio-site/internal/metrics"
	"github.com/pankajah/portfolio-site/internal/site"
)

var (
	exportOut         string
	exportBasePath    string
	exportMetricsFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long: `Renders the page, 404 page, stylesheet, script, content.json and images
into a directory that any static host can serve. Use --base-path when the
site lives under a sub-path such as /portfolio-site.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("out") {
			cfg.OutputDir = exportOut
		}
		if cmd.Flags().Changed("base-path") {
			cfg.BasePath = exportBasePath
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		n, err := site.NewGenerator(renderer, cfg.OutputDir, cfg.ImagesDir).Generate()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		reg := prometheus.NewRegistry()
		metrics.New(reg).IncrementStaticExports()
		if exportMetricsFile != "" {
			// Picked up by node_exporter's textfile collector.
			if err := prometheus.WriteToTextfile(exportMetricsFile, reg); err != nil {
				return fmt.Errorf("writing metrics file: %w", err)
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files to %s", n, cfg.OutputDir)
		if base := renderer.Options().BasePath; base != "" {
			fmt.Fprintf(cmd.OutOrStdout(), " (base path %s)", base)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output directory (default from config)")
	exportCmd.Flags().StringVar(&exportBasePath, "base-path", "", "path prefix the site is hosted under")
	exportCmd.Flags().StringVar(&exportMetricsFile, "metrics-file", "", "write export metrics in Prometheus text format to this file")
	rootCmd.AddCommand(exportCmd)
}
