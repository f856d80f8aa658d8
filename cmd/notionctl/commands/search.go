package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valksor/go-notion/notion"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search pages and databases shared with the integration",
	Long: `Search by title across everything the integration can see.

An empty query lists all shared pages and databases, most recently edited
first.

Examples:
  notionctl search "roadmap"
  notionctl search --pages "meeting notes"
  notionctl search --databases`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

var (
	searchPages     bool
	searchDatabases bool
	searchLimit     int
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().BoolVar(&searchPages, "pages", false, "Only return pages")
	searchCmd.Flags().BoolVar(&searchDatabases, "databases", false, "Only return databases")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Page size (0 = server default)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchPages && searchDatabases {
		return fmt.Errorf("--pages and --databases are mutually exclusive")
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	req := &notion.SearchRequest{
		Sort: &notion.SearchSort{Direction: "descending", Timestamp: "last_edited_time"},
	}
	if len(args) > 0 {
		req.Query = args[0]
	}
	if searchPages {
		req.Filter = &notion.SearchFilter{Value: "page", Property: "object"}
	}
	if searchDatabases {
		req.Filter = &notion.SearchFilter{Value: "database", Property: "object"}
	}
	if searchLimit > 0 {
		req.PageSize = searchLimit
	}

	response, err := client.Search.Do(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), response.Results)
	}

	if len(response.Results) == 0 {
		fmt.Println("No results.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "OBJECT\tID\tTITLE\tLAST EDITED")
	for _, result := range response.Results {
		switch {
		case result.Page != nil:
			page := result.Page
			fmt.Fprintf(w, "page\t%s\t%s\t%s\n", page.ID, truncate(titleOrUntitled(page.Title()), 50), formatTime(page.LastEditedTime))
		case result.Database != nil:
			database := result.Database
			fmt.Fprintf(w, "database\t%s\t%s\t%s\n", database.ID, truncate(titleOrUntitled(database.TitleText()), 50), formatTime(database.LastEditedTime))
		default:
			fmt.Fprintf(w, "%s\t-\t-\t-\n", result.Object)
		}
	}
	return w.Flush()
}

func titleOrUntitled(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}
