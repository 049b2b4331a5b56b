package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"atsmatch/internal/keywords"
)

// YAMLConfig represents the structure of the config.yaml file.
// Reviewed vocabulary changes are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Keywords KeywordsConfig `yaml:"keywords"`
}

// KeywordsConfig adjusts the keyword analyzer.
type KeywordsConfig struct {
	AddStopWords    []string `yaml:"add_stop_words,omitempty"`
	RemoveStopWords []string `yaml:"remove_stop_words,omitempty"` // Wins over additions
	MatchedLimit    int      `yaml:"matched_limit,omitempty"`     // Default 50
	MissingLimit    int      `yaml:"missing_limit,omitempty"`     // Default 30
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	return LoadYAMLConfigFile(getEnv("CONFIG_FILE", "config.yaml"))
}

// LoadYAMLConfigFile loads the YAML configuration at path.
// Returns nil without error if the file doesn't exist.
func LoadYAMLConfigFile(path string) (*YAMLConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.Keywords.MatchedLimit <= 0 {
		cfg.Keywords.MatchedLimit = keywords.DefaultMatchedLimit
	}
	if cfg.Keywords.MissingLimit <= 0 {
		cfg.Keywords.MissingLimit = keywords.DefaultMissingLimit
	}

	return &cfg, nil
}

// StopWords returns the default vocabulary with the configured changes applied.
func (c *YAMLConfig) StopWords() keywords.StopWords {
	sw := keywords.DefaultStopWords()
	if c == nil {
		return sw
	}
	if len(c.Keywords.AddStopWords) == 0 && len(c.Keywords.RemoveStopWords) == 0 {
		return sw
	}
	return sw.With(c.Keywords.AddStopWords, c.Keywords.RemoveStopWords)
}

// Analyzer builds the keyword analyzer described by the config.
// A nil config yields the default analyzer.
func (c *YAMLConfig) Analyzer() *keywords.Analyzer {
	if c == nil {
		return keywords.NewAnalyzer(nil)
	}
	return keywords.NewAnalyzer(
		keywords.NewExtractor(c.StopWords()),
		keywords.WithMatchedLimit(c.Keywords.MatchedLimit),
		keywords.WithMissingLimit(c.Keywords.MissingLimit),
	)
}
