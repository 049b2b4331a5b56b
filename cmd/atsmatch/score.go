package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"atsmatch/internal/db"
	"atsmatch/internal/document"
	"atsmatch/internal/keywords"
	"atsmatch/internal/models"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Score a resume (PDF or plain text file) against a job description file and print the match report as a table or JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJDFile     string
	scoreJSON       bool
	scoreDBURL      string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume (.pdf or text file)")
	scoreCmd.Flags().StringVarP(&scoreJDFile, "jd", "j", "", "Path to job description text file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the report as JSON")
	scoreCmd.Flags().StringVar(&scoreDBURL, "db-url", "", "Database URL to record the analysis (content-free)")

	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	analyzer, err := loadAnalyzer()
	if err != nil {
		return err
	}

	resumeText, err := readResume(scoreResumeFile)
	if err != nil {
		return err
	}

	jdText, err := os.ReadFile(scoreJDFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	report, err := analyzer.Analyze(resumeText, string(jdText))
	if err != nil {
		return err
	}

	if scoreDBURL != "" {
		a, err := recordReport(cmd.Context(), scoreDBURL, report)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Recorded analysis %s\n", a.ID)
	}

	if scoreJSON {
		return writeJSON(cmd.OutOrStdout(), report)
	}
	return renderReport(cmd.OutOrStdout(), report)
}

// readResume returns the text of a PDF or plain text resume.
func readResume(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resume: %w", err)
	}

	if !document.IsPDF(path) {
		return string(data), nil
	}

	text, err := document.ExtractText(filepath.Base(path), data)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("could not extract text from PDF")
	}
	return text, nil
}

func recordReport(ctx context.Context, dbURL string, report keywords.Report) (*models.Analysis, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.New(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.RunMigrations(dbURL); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a := &models.Analysis{
		Source:          models.SourceCLI,
		Score:           report.Score,
		Label:           report.ScoreLabel.String(),
		TotalJDKeywords: report.TotalJDKeywords,
		TotalMatched:    report.TotalMatched,
	}
	if err := database.RecordAnalysis(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderReport prints the summary table followed by the keyword lists.
func renderReport(w io.Writer, report keywords.Report) error {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")

	rows := [][]string{
		{"Score", strconv.FormatFloat(report.Score, 'f', 2, 64)},
		{"Label", report.ScoreLabel.String()},
		{"JD keywords", strconv.Itoa(report.TotalJDKeywords)},
		{"Matched", strconv.Itoa(report.TotalMatched)},
		{"Matched keywords", joinOrDash(report.MatchedKeywords)},
		{"Missing keywords", joinOrDash(report.MissingKeywords)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func joinOrDash(words []string) string {
	if len(words) == 0 {
		return "-"
	}
	return strings.Join(words, ", ")
}
