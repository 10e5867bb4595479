package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/analyze"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats <file>",
	Short: "Show document statistics",
	Long: `Show word, sentence, and paragraph counts, estimated reading time,
and detected section headings.

Examples:
  paperfmt stats essay.txt
  paperfmt stats essay.txt --human`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	content := readContent(args[0])
	st := analyze.Analyze(content)

	if humanOutput {
		fmt.Printf("Words:           %d\n", st.WordCount)
		fmt.Printf("Characters:      %d\n", st.CharacterCount)
		fmt.Printf("Sentences:       %d\n", st.SentenceCount)
		fmt.Printf("Paragraphs:      %d\n", st.ParagraphCount)
		fmt.Printf("Reading time:    %.1f minutes\n", st.ReadingTimeMinutes)
		fmt.Printf("Words/sentence:  %.1f\n", st.AvgWordsPerSentence)
		if len(st.Sections) > 0 {
			fmt.Printf("Sections:        %s\n", strings.Join(st.Sections, "; "))
		}
		return nil
	}

	return outputJSON(st)
}
