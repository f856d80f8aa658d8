package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valksor/go-notion/internal/log"
	"github.com/valksor/go-notion/internal/markdown"
	"github.com/valksor/go-notion/notion"
)

var blocksCmd = &cobra.Command{
	Use:   "blocks <reference>",
	Short: "Render a block's children as markdown",
	Long: `Fetch the child blocks of a page or block and render them.

All pages of results are fetched, following cursors. The default output is
markdown; use -o json for the decoded block tree, or -o text for plain
text with no markup.

Examples:
  notionctl blocks <page-ref>
  notionctl blocks -o json <page-ref>`,
	Args: cobra.ExactArgs(1),
	RunE: runBlocks,
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}

func runBlocks(cmd *cobra.Command, args []string) error {
	ref, err := resolveRef(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	log.Debug("fetching block children", log.PageID(ref.ID))
	blocks, err := client.Blocks.AllChildren(cmd.Context(), ref.ID)
	if err != nil {
		return fmt.Errorf("fetch blocks: %w", err)
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "json":
		return printJSON(out, blocks)
	case "text":
		for _, block := range blocks {
			if text := notion.PlainText(block.RichTextContent()); text != "" {
				fmt.Fprintln(out, text)
			}
		}
		return nil
	default:
		fmt.Fprint(out, markdown.Render(blocks))
		return nil
	}
}
