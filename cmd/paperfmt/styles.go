package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/style"
)

func init() {
	rootCmd.AddCommand(stylesCmd)
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List supported styles and their layout conventions",
	Long: `List the supported academic styles with their page-layout rule
tables. The rules are informational: output is plain text, so margins and
fonts are not applied.

Examples:
  paperfmt styles
  paperfmt styles --human`,
	Args: cobra.NoArgs,
	RunE: runStyles,
}

func runStyles(cmd *cobra.Command, args []string) error {
	if humanOutput {
		for _, s := range style.All {
			r := style.Rules(s)
			fmt.Printf("%s\n", r.Name)
			fmt.Printf("  Spacing:    %s\n", r.Spacing)
			fmt.Printf("  Citations:  %s\n", r.Citations)
			fmt.Printf("  References: %s\n\n", r.References)
		}
		return nil
	}

	rules := make(map[string]style.RuleSet, len(style.All))
	for _, s := range style.All {
		rules[string(s)] = style.Rules(s)
	}
	return outputJSON(rules)
}
