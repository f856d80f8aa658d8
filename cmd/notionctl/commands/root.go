package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/valksor/go-notion/internal/config"
	"github.com/valksor/go-notion/internal/log"
)

var (
	cfg      *config.Config
	settings *config.Settings

	// Global flags.
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "notionctl",
	Short: "Read Notion pages and databases from the terminal",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Long: `Notionctl is a read-only CLI for the Notion API by Valksor.

It fetches pages, block content, database schemas and rows, and renders
them as markdown, JSON, or plain text. References can be pasted in any
form: a 32-char id, a dashed UUID, or a notion.so URL.

Quick Start:
  notionctl page <ref>           Show a page and its properties
  notionctl blocks <ref>         Render a page's content as markdown
  notionctl db query <ref>       Query database rows
  notionctl search "term"        Search shared pages and databases

Authentication:
  Set NOTION_TOKEN, or put it in .notionctl/.env or ~/.notionctl/config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load .env file FIRST, before anything else
		// This ensures env vars are available for all subsequent operations
		if err := config.LoadDotEnvFromCwd(); err != nil {
			// Log warning but don't fail - .env parsing errors should be reported
			// but shouldn't prevent the command from running
			fmt.Fprintf(os.Stderr, "warning: failed to load .notionctl/.env: %v\n", err)
		}

		// Configure logging from CLI flag
		log.Configure(log.Options{
			Verbose: verbose,
		})

		// Load config (defaults when no file exists)
		var err error
		cfg, err = config.LoadFromHome()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// Load settings (user state)
		settings, err = config.LoadSettings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		if outputFormat == "" {
			outputFormat = cfg.Output.Format
		}
		switch outputFormat {
		case "markdown", "json", "text":
		default:
			return fmt.Errorf("invalid output format: %s (must be markdown, json, or text)", outputFormat)
		}

		log.Debug("initialized", "verbose", verbose, "format", outputFormat)

		return nil
	},
}

// Execute runs the root command with signal handling.
func Execute() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: markdown, json, or text")
}
