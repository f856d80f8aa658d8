package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valksor/go-notion/internal/log"
	"github.com/valksor/go-notion/internal/markdown"
	"github.com/valksor/go-notion/notion"
)

var pageCmd = &cobra.Command{
	Use:   "page <reference>",
	Short: "Show a page and its properties",
	Long: `Show a page's title, metadata, and property values.

The reference can be a 32-char id, a dashed UUID, a notion.so URL, or any
of those with a notion: prefix.

Examples:
  notionctl page 598337872cf9425fb2bc8519ce75ba73
  notionctl page https://www.notion.so/workspace/Title-59833787...
  notionctl page --content <ref>   # also render the page body`,
	Args: cobra.ExactArgs(1),
	RunE: runPage,
}

var pageContent bool

func init() {
	rootCmd.AddCommand(pageCmd)

	pageCmd.Flags().BoolVarP(&pageContent, "content", "c", false, "Also fetch and render the page body")
}

func runPage(cmd *cobra.Command, args []string) error {
	ref, err := resolveRef(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	log.Debug("fetching page", log.PageID(ref.ID))
	page, err := client.Pages.Get(cmd.Context(), ref.ID)
	if err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}

	if outputFormat == "json" {
		if err := printJSON(cmd.OutOrStdout(), page); err != nil {
			return err
		}
	} else {
		printPage(page)
	}

	if !pageContent {
		return nil
	}

	blocks, err := client.Blocks.AllChildren(cmd.Context(), page.ID)
	if err != nil {
		return fmt.Errorf("fetch page content: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), blocks)
	}

	fmt.Println()
	fmt.Print(markdown.Render(blocks))
	return nil
}

func printPage(page *notion.Page) {
	title := page.Title()
	if title == "" {
		title = "(untitled)"
	}

	fmt.Printf("# %s\n\n", title)
	fmt.Printf("ID:          %s\n", page.ID)
	if page.URL != "" {
		fmt.Printf("URL:         %s\n", page.URL)
	}
	fmt.Printf("Created:     %s\n", formatTime(page.CreatedTime))
	fmt.Printf("Last edited: %s\n", formatTime(page.LastEditedTime))
	if page.Archived {
		fmt.Printf("Archived:    yes\n")
	}

	if page.Properties.Len() == 0 {
		return
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROPERTY\tTYPE\tVALUE")
	for _, name := range page.Properties.Names() {
		prop, _ := page.Properties.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, prop.Type, truncate(prop.PlainText(), 60))
	}
	_ = w.Flush()
}
