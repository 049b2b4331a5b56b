package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"atsmatch/internal/db"
	"atsmatch/internal/models"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a recorded analysis",
	Long:  "Look up an analysis recorded with 'score --db-url' by its ID and print the stored, content-free summary.",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var (
	showDBURL string
	showJSON  bool
)

func init() {
	showCmd.Flags().StringVar(&showDBURL, "db-url", "", "Database URL (default: DATABASE_URL)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the record as JSON")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid analysis ID %q: %w", args[0], err)
	}

	dbURL := showDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return errors.New("--db-url or DATABASE_URL is required")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	database, err := db.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	a, err := database.GetAnalysis(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrAnalysisNotFound) {
			return fmt.Errorf("analysis %s: %w", id, err)
		}
		return fmt.Errorf("failed to fetch analysis: %w", err)
	}

	if showJSON {
		return writeJSON(cmd.OutOrStdout(), a)
	}
	return renderAnalysis(cmd.OutOrStdout(), a)
}

func renderAnalysis(w io.Writer, a *models.Analysis) error {
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Value")

	rows := [][]string{
		{"ID", a.ID.String()},
		{"Source", a.Source},
		{"Score", strconv.FormatFloat(a.Score, 'f', 2, 64)},
		{"Label", a.Label},
		{"JD keywords", strconv.Itoa(a.TotalJDKeywords)},
		{"Matched", strconv.Itoa(a.TotalMatched)},
		{"Recorded", a.CreatedAt.UTC().Format(time.RFC3339)},
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
