package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valksor/go-notion/internal/log"
	"github.com/valksor/go-notion/notion"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and query databases",
}

var dbGetCmd = &cobra.Command{
	Use:   "get <reference>",
	Short: "Show a database's schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runDBGet,
}

var dbQueryCmd = &cobra.Command{
	Use:   "query [reference]",
	Short: "Query database rows",
	Long: `Query a database and list the matching pages.

The reference may be omitted when query.database is set in the config
file. Filters combine with AND when more than one is given.

Examples:
  notionctl db query <ref>
  notionctl db query --status "In Progress" <ref>
  notionctl db query --select "Bug" --filter-prop Type <ref>
  notionctl db query --sort "Created" --descending --limit 20 <ref>`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDBQuery,
}

var (
	queryFilterProp string
	queryStatus     string
	querySelect     string
	querySort       string
	queryDescending bool
	queryLimit      int
	queryAll        bool
)

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbGetCmd)
	dbCmd.AddCommand(dbQueryCmd)

	dbQueryCmd.Flags().StringVar(&queryFilterProp, "filter-prop", "Status", "Property name the status/select filters apply to")
	dbQueryCmd.Flags().StringVar(&queryStatus, "status", "", "Filter: status property equals value")
	dbQueryCmd.Flags().StringVar(&querySelect, "select", "", "Filter: select property equals value")
	dbQueryCmd.Flags().StringVar(&querySort, "sort", "", "Sort by property name")
	dbQueryCmd.Flags().BoolVar(&queryDescending, "descending", false, "Sort descending")
	dbQueryCmd.Flags().IntVar(&queryLimit, "limit", 0, "Page size (0 = server default)")
	dbQueryCmd.Flags().BoolVar(&queryAll, "all", false, "Follow cursors and fetch every matching page")
}

func runDBGet(cmd *cobra.Command, args []string) error {
	ref, err := resolveRef(args[0])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	log.Debug("fetching database", log.DatabaseID(ref.ID))
	database, err := client.Databases.Get(cmd.Context(), ref.ID)
	if err != nil {
		return fmt.Errorf("fetch database: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), database)
	}

	title := database.TitleText()
	if title == "" {
		title = "(untitled)"
	}

	fmt.Printf("# %s\n\n", title)
	fmt.Printf("ID:          %s\n", database.ID)
	if database.URL != "" {
		fmt.Printf("URL:         %s\n", database.URL)
	}
	fmt.Printf("Last edited: %s\n", formatTime(database.LastEditedTime))

	if database.Properties.Len() == 0 {
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COLUMN\tTYPE\tID")
	for _, name := range database.Properties.Names() {
		prop, _ := database.Properties.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, prop.Type, prop.ID)
	}
	return w.Flush()
}

func runDBQuery(cmd *cobra.Command, args []string) error {
	input := cfg.Query.Database
	if len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		return fmt.Errorf("no database given (pass a reference or set query.database in config)")
	}

	ref, err := resolveRef(input)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	req := buildQueryRequest()

	log.Debug("querying database", log.DatabaseID(ref.ID))
	var pages []notion.Page
	if queryAll {
		pages, err = client.Databases.QueryAll(cmd.Context(), ref.ID, req)
	} else {
		var response *notion.PageListResponse
		response, err = client.Databases.Query(cmd.Context(), ref.ID, req)
		if response != nil {
			pages = response.Results
		}
	}
	if err != nil {
		return fmt.Errorf("query database: %w", err)
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), pages)
	}

	if len(pages) == 0 {
		fmt.Println("No matching pages.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tLAST EDITED")
	for i := range pages {
		page := &pages[i]
		title := page.Title()
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", page.ID, truncate(title, 50), formatTime(page.LastEditedTime))
	}
	return w.Flush()
}

// buildQueryRequest assembles the query from the command flags. Multiple
// leaf filters combine under an and group.
func buildQueryRequest() *notion.DatabaseQueryRequest {
	req := &notion.DatabaseQueryRequest{}

	var filters []notion.Filter
	if queryStatus != "" {
		filters = append(filters, notion.Filter{
			Property: queryFilterProp,
			Status:   &notion.StatusFilter{Equals: queryStatus},
		})
	}
	if querySelect != "" {
		filters = append(filters, notion.Filter{
			Property: queryFilterProp,
			Select:   &notion.SelectFilter{Equals: querySelect},
		})
	}

	switch len(filters) {
	case 0:
	case 1:
		req.Filter = &filters[0]
	default:
		req.Filter = &notion.Filter{And: filters}
	}

	if querySort != "" {
		direction := "ascending"
		if queryDescending {
			direction = "descending"
		}
		req.Sorts = []notion.Sort{{Property: querySort, Direction: direction}}
	}

	if queryLimit > 0 {
		req.PageSize = queryLimit
	} else if cfg.Query.PageSize > 0 {
		req.PageSize = cfg.Query.PageSize
	}

	return req
}
