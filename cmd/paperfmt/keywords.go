package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/textutil"
)

var keywordsMax int

func init() {
	keywordsCmd.Flags().IntVar(&keywordsMax, "max", 10, "Maximum keywords to return")
	rootCmd.AddCommand(keywordsCmd)
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords <file>",
	Short: "Extract keywords from a document",
	Long: `Extract the most frequent non-stopword terms from a document.

Examples:
  paperfmt keywords essay.txt
  paperfmt keywords essay.txt --max 5 --human`,
	Args: cobra.ExactArgs(1),
	RunE: runKeywords,
}

func runKeywords(cmd *cobra.Command, args []string) error {
	content := readContent(args[0])
	keywords := textutil.Keywords(content, keywordsMax)

	if humanOutput {
		if len(keywords) == 0 {
			fmt.Println("No keywords found")
			return nil
		}
		fmt.Println(strings.Join(keywords, ", "))
		return nil
	}

	if keywords == nil {
		keywords = []string{}
	}
	return outputJSON(keywords)
}
