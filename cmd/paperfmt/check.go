package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/assist"
	"github.com/paperfmt/paperfmt/internal/docproc"
)

var (
	checkStyle  string
	checkAssist bool
)

func init() {
	checkCmd.Flags().StringVar(&checkStyle, "style", "", "Target style: mla, apa, chicago, harvard, ieee")
	checkCmd.Flags().BoolVar(&checkAssist, "assist", false, "Ask the configured language model for additional commentary")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Report formatting elements a document appears to lack",
	Long: `Check a document against a style's expected elements (abstract,
introduction, references section, page numbers, and so on).

The checks are heuristic and advisory; they never block formatting.
With --assist and a configured API key, a language model adds free-form
commentary after the checklist.

Examples:
  paperfmt check essay.txt --style apa
  paperfmt check essay.txt --style ieee --assist --human`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckResponse is the JSON output of the check command.
type CheckResponse struct {
	Style      string   `json:"style"`
	Missing    []string `json:"missing"`
	Commentary string   `json:"commentary,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	s := resolveStyle(checkStyle, cfg)
	content := readContent(args[0])

	missing, err := docproc.New(docproc.Config{}).FindMissingElements(content, s)
	if err != nil {
		exitWithError(ExitBadInput, "checking document: %v", err)
	}

	resp := CheckResponse{Style: string(s), Missing: missing}

	if checkAssist {
		opts := []assist.Option{assist.WithAPIKey(cfg.Assist.APIKey)}
		if cfg.Assist.BaseURL != "" {
			opts = append(opts, assist.WithBaseURL(cfg.Assist.BaseURL))
		}
		if cfg.Assist.Model != "" {
			opts = append(opts, assist.WithModel(cfg.Assist.Model))
		}

		commentary, err := assist.NewClient(opts...).Review(context.Background(), content, s)
		if err != nil {
			// Advisory only: report and continue with the heuristic checks.
			fmt.Fprintf(os.Stderr, "warning: assist unavailable: %v\n", err)
		} else {
			resp.Commentary = commentary
		}
	}

	if humanOutput {
		if len(resp.Missing) == 0 {
			fmt.Println("No missing elements detected")
		} else {
			fmt.Printf("Possibly missing for %s:\n", s.DisplayName())
			for _, m := range resp.Missing {
				fmt.Printf("  - %s\n", m)
			}
		}
		if resp.Commentary != "" {
			fmt.Printf("\nAssistant commentary:\n%s\n", resp.Commentary)
		}
		return nil
	}

	return outputJSON(resp)
}
