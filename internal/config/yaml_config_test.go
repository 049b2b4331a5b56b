package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atsmatch/internal/keywords"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadYAMLConfigFile_Missing(t *testing.T) {
	cfg, err := LoadYAMLConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoadYAMLConfigFile_Invalid(t *testing.T) {
	_, err := LoadYAMLConfigFile(writeConfig(t, "keywords: [unterminated"))
	assert.Error(t, err)
}

func TestLoadYAMLConfigFile_Defaults(t *testing.T) {
	cfg, err := LoadYAMLConfigFile(writeConfig(t, "keywords: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, keywords.DefaultMatchedLimit, cfg.Keywords.MatchedLimit)
	assert.Equal(t, keywords.DefaultMissingLimit, cfg.Keywords.MissingLimit)
}

func TestLoadYAMLConfig_UsesConfigFileEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeConfig(t, "keywords:\n  matched_limit: 7\n"))

	cfg, err := LoadYAMLConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 7, cfg.Keywords.MatchedLimit)
}

func TestYAMLConfig_StopWords(t *testing.T) {
	cfg, err := LoadYAMLConfigFile(writeConfig(t, `
keywords:
  add_stop_words: [synergy]
  remove_stop_words: [go]
`))
	require.NoError(t, err)

	sw := cfg.StopWords()
	assert.True(t, sw.Contains("synergy"))
	assert.False(t, sw.Contains("go"))
	assert.True(t, keywords.DefaultStopWords().Contains("go"), "default set must not change")
}

func TestYAMLConfig_Analyzer(t *testing.T) {
	cfg, err := LoadYAMLConfigFile(writeConfig(t, `
keywords:
  remove_stop_words: [go]
  matched_limit: 1
`))
	require.NoError(t, err)

	report, err := cfg.Analyzer().Analyze("go kubernetes terraform", "go kubernetes terraform")
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalJDKeywords)
	assert.Equal(t, []string{"go"}, report.MatchedKeywords)
}

func TestYAMLConfig_NilAnalyzer(t *testing.T) {
	var cfg *YAMLConfig
	report, err := cfg.Analyzer().Analyze("python", "python")
	require.NoError(t, err)
	assert.Equal(t, 100.0, report.Score)
}
