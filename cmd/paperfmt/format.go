package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/convert"
	"github.com/paperfmt/paperfmt/internal/docproc"
)

var (
	formatStyle       string
	formatTitle       string
	formatAuthor      string
	formatCourse      string
	formatInstructor  string
	formatDueDate     string
	formatOut         string
	formatSortAuthors bool
)

func init() {
	formatCmd.Flags().StringVar(&formatStyle, "style", "", "Target style: mla, apa, chicago, harvard, ieee")
	formatCmd.Flags().StringVar(&formatTitle, "title", "", "Document title")
	formatCmd.Flags().StringVar(&formatAuthor, "author", "", "Author name")
	formatCmd.Flags().StringVar(&formatCourse, "course", "", "Course name")
	formatCmd.Flags().StringVar(&formatInstructor, "instructor", "", "Instructor name")
	formatCmd.Flags().StringVar(&formatDueDate, "due-date", "", "Due date")
	formatCmd.Flags().StringVarP(&formatOut, "out", "o", "", "Write output to file instead of stdout")
	formatCmd.Flags().BoolVar(&formatSortAuthors, "sort-authors", false, "Sort bibliography authors alphabetically")
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format <file>",
	Short: "Format a document into an academic style",
	Long: `Format a plain-text, Markdown, or PDF document into an academic style.

Reads from stdin when the file argument is "-". The formatted document is
written to stdout (or --out) as plain text.

Examples:
  paperfmt format essay.txt --style apa --title "My Paper" --author "J. Doe"
  cat essay.txt | paperfmt format - --style mla`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := resolveStyle(formatStyle, cfg)
	content := readContent(args[0])

	if err := docproc.ValidateInput(content); err != nil {
		if errors.Is(err, docproc.ErrEmptyInput) {
			exitWithError(ExitBadInput, "document is empty")
		}
		exitWithError(ExitError, "%v", err)
	}

	proc := docproc.New(docproc.Config{
		SortAuthors: formatSortAuthors || cfg.SortAuthors,
	})

	formatted, err := proc.FormatDocument(content, s, convert.Metadata{
		Title:      formatTitle,
		Author:     formatAuthor,
		Course:     formatCourse,
		Instructor: formatInstructor,
		DueDate:    formatDueDate,
	})
	if err != nil {
		exitWithError(ExitBadInput, "formatting document: %v", err)
	}

	writeOutput(formatOut, formatted)
	return nil
}
