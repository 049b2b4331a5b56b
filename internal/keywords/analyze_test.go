package keywords

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_InvalidInput(t *testing.T) {
	a := NewAnalyzer(nil)

	tests := []struct {
		name    string
		resume  string
		jd      string
		wantErr error
	}{
		{"empty resume", "", "python", ErrEmptyResume},
		{"whitespace resume", " \n\t", "python", ErrEmptyResume},
		{"empty jd", "python", "", ErrEmptyJobDescription},
		{"whitespace jd", "python", "   ", ErrEmptyJobDescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Analyze(tt.resume, tt.jd)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestAnalyze_DegenerateInput(t *testing.T) {
	report, err := NewAnalyzer(nil).Analyze("Python developer", "the and of 123")
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Score)
	assert.Equal(t, LabelPoor, report.ScoreLabel)
	assert.NotNil(t, report.MatchedKeywords)
	assert.NotNil(t, report.MissingKeywords)
	assert.Empty(t, report.MatchedKeywords)
	assert.Empty(t, report.MissingKeywords)
	assert.Equal(t, 0, report.TotalJDKeywords)
	assert.Equal(t, 0, report.TotalMatched)
}

func TestAnalyze_Report(t *testing.T) {
	resume := "Built REST APIs in Python and Java. Deployed with Docker."
	jd := "Python, Java, Docker and Kubernetes experience."

	report, err := NewAnalyzer(nil).Analyze(resume, jd)
	require.NoError(t, err)

	// jd keywords: python, java, docker, kubernetes, experience
	assert.Equal(t, 5, report.TotalJDKeywords)
	assert.Equal(t, 3, report.TotalMatched)
	assert.Equal(t, 60.0, report.Score)
	assert.Equal(t, LabelGood, report.ScoreLabel)
	assert.Equal(t, []string{"docker", "java", "python"}, report.MatchedKeywords)
	assert.Equal(t, []string{"experience", "kubernetes"}, report.MissingKeywords)
}

func TestAnalyze_TruncationDeterministic(t *testing.T) {
	var words []string
	for i := 0; i < 80; i++ {
		words = append(words, fmt.Sprintf("tool%c%c", 'a'+i/26, 'a'+i%26))
	}
	text := ""
	for i := len(words) - 1; i >= 0; i-- {
		text += words[i] + " "
	}

	report, err := NewAnalyzer(nil).Analyze(text, text)
	require.NoError(t, err)

	assert.Equal(t, 100.0, report.Score)
	assert.Equal(t, 80, report.TotalMatched)
	require.Len(t, report.MatchedKeywords, DefaultMatchedLimit)
	assert.Equal(t, words[:DefaultMatchedLimit], report.MatchedKeywords)
	assert.Empty(t, report.MissingKeywords)
}

func TestAnalyze_MissingTruncation(t *testing.T) {
	var words []string
	for i := 0; i < 40; i++ {
		words = append(words, fmt.Sprintf("skill%c%c", 'a'+i/26, 'a'+i%26))
	}
	jd := ""
	for _, w := range words {
		jd += w + ", "
	}

	report, err := NewAnalyzer(nil).Analyze("unrelated background text", jd)
	require.NoError(t, err)

	assert.Equal(t, 40, report.TotalJDKeywords)
	assert.Equal(t, words[:DefaultMissingLimit], report.MissingKeywords)
}

func TestAnalyzer_Options(t *testing.T) {
	a := NewAnalyzer(NewExtractor(NewStopWords()), WithMatchedLimit(2), WithMissingLimit(1), WithMissingLimit(0))

	report := a.Compare(NewSet("a1", "b2", "c3"), NewSet("a1", "b2", "c3", "d4", "e5"))

	assert.Equal(t, []string{"a1", "b2"}, report.MatchedKeywords)
	assert.Equal(t, []string{"d4"}, report.MissingKeywords)
	assert.Equal(t, 3, report.TotalMatched)
	assert.Equal(t, 60.0, report.Score)
}
