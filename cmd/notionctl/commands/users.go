package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/valksor/go-notion/notion"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List workspace users",
	Args:  cobra.NoArgs,
	RunE:  runUsers,
}

func init() {
	rootCmd.AddCommand(usersCmd)
}

func runUsers(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	var users []notion.User
	cursor := ""
	for {
		response, err := client.Users.List(cmd.Context(), cursor)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		users = append(users, response.Results...)

		if !response.HasMore {
			break
		}
		cursor = response.NextCursor
	}

	if outputFormat == "json" {
		return printJSON(cmd.OutOrStdout(), users)
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, user := range users {
		email := "-"
		if user.Person != nil && user.Person.Email != "" {
			email = user.Person.Email
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", user.ID, user.Name, email)
	}
	return w.Flush()
}
