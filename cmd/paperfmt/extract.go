package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/citation"
	"github.com/paperfmt/paperfmt/internal/docproc"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract citations from a document",
	Long: `Extract citation-like spans from a document and classify them.

Outputs the detected records as JSON. The same source span can appear more
than once when several detection rules fire on it.

Examples:
  paperfmt extract essay.txt
  paperfmt extract essay.txt --human`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	content := readContent(args[0])
	records := docproc.New(docproc.Config{}).ExtractCitations(content)

	if humanOutput {
		if len(records) == 0 {
			fmt.Println("No citations found")
			return nil
		}
		fmt.Printf("%d citations found:\n\n", len(records))
		for _, rec := range records {
			fmt.Printf("  %-12s %-40q %s\n", rec.Kind, rec.RawText, describeRecord(rec))
		}
		return nil
	}

	if records == nil {
		records = []citation.Record{}
	}
	return outputJSON(records)
}

func describeRecord(rec citation.Record) string {
	switch rec.Kind {
	case citation.KindNumbered:
		return fmt.Sprintf("number=%d", rec.Number)
	case citation.KindAuthorYear:
		out := "author=" + rec.Author
		if rec.Year != "" {
			out += " year=" + rec.Year
		}
		if rec.Page != "" {
			out += " page=" + rec.Page
		}
		return out
	case citation.KindTitle:
		return "title=" + rec.Title
	}
	return ""
}
