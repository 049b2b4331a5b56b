// Package main provides the atsmatch command line tool for scoring resumes
// against job descriptions locally.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"atsmatch/internal/config"
	"atsmatch/internal/keywords"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "atsmatch",
	Short: "ATS keyword match scoring",
	Long:  "atsmatch compares the keywords of a resume against a job description and reports the match score, label, matched and missing keywords.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML config (default: CONFIG_FILE or config.yaml)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadAnalyzer builds the analyzer from --config, falling back to CONFIG_FILE.
func loadAnalyzer() (*keywords.Analyzer, error) {
	var (
		cfg *config.YAMLConfig
		err error
	)
	if configFile != "" {
		cfg, err = config.LoadYAMLConfigFile(configFile)
	} else {
		cfg, err = config.LoadYAMLConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.Analyzer(), nil
}
