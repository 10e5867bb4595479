// Package main provides the paperfmt CLI entry point.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/paperfmt/paperfmt/internal/config"
	"github.com/paperfmt/paperfmt/internal/loader"
	"github.com/paperfmt/paperfmt/internal/style"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paperfmt",
	Short: "Academic document formatter",
	Long: `paperfmt reformats plain-text academic documents into MLA, APA,
Chicago, Harvard, or IEEE style.

It extracts citation-like spans from the text, rewrites them as in-text
citations for the chosen style, and appends a generated works-cited or
references section. Data commands output JSON by default for easy
integration with other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

// loadConfig loads .env, the config file, and environment overrides.
func loadConfig() *config.Config {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	cfg.ApplyEnv()
	return cfg
}

// resolveStyle picks the requested style, falling back to the configured
// default and then to MLA.
func resolveStyle(requested string, cfg *config.Config) style.Style {
	name := requested
	if name == "" {
		name = cfg.DefaultStyle
	}
	if name == "" {
		name = string(style.MLA)
	}

	s, err := style.Parse(name)
	if err != nil {
		exitWithError(ExitBadInput, "%v (choose one of: mla, apa, chicago, harvard, ieee)", err)
	}
	return s
}

// readContent loads document text from a file argument, or from stdin when
// the argument is "-".
func readContent(arg string) string {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError(ExitError, "reading stdin: %v", err)
		}
		return string(data)
	}

	content, err := loader.Load(arg)
	if err != nil {
		exitWithError(ExitDataError, "loading %s: %v", arg, err)
	}
	return content
}

// writeOutput writes text to a file, or stdout when path is empty.
func writeOutput(path, text string) {
	if path == "" {
		fmt.Println(text)
		return
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		exitWithError(ExitError, "writing %s: %v", path, err)
	}
}
