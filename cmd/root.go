package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pankajah/portfolio-site/internal/config"
	"github.com/pankajah/portfolio-site/internal/content"
	"github.com/pankajah/portfolio-site/internal/site"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site for Pankaja Hewakaluge",
	Long: `Serves the single-page portfolio with its scroll-driven animations,
or exports it as a static site that can be hosted from any path prefix.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}

// loadConfig reads and validates the config named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	return site.NewRenderer(content.Default(), site.Options{
		BasePath:    cfg.BasePath,
		AssetPrefix: cfg.AssetPrefix,
	})
}
