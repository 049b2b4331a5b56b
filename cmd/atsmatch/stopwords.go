package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "List the effective stop-word vocabulary",
	Long:  "Print every stop word, one per line, after applying the YAML config additions and removals.",
	RunE:  runStopwords,
}

var stopwordsCount bool

func init() {
	stopwordsCmd.Flags().BoolVar(&stopwordsCount, "count", false, "Print only the number of stop words")

	rootCmd.AddCommand(stopwordsCmd)
}

func runStopwords(cmd *cobra.Command, _ []string) error {
	analyzer, err := loadAnalyzer()
	if err != nil {
		return err
	}
	sw := analyzer.Extractor().StopWords()

	out := cmd.OutOrStdout()
	if stopwordsCount {
		_, err := fmt.Fprintln(out, sw.Len())
		return err
	}
	for _, w := range sw.Words() {
		if _, err := fmt.Fprintln(out, w); err != nil {
			return err
		}
	}
	return nil
}
