package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/careerwise/internal/profile"
	"github.com/abhisek/careerwise/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect local accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := storeFor(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		users, err := s.UserRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}
		if len(users) == 0 {
			fmt.Println("No accounts yet.")
			return nil
		}

		fmt.Printf("%-28s  %-24s  %-22s  %-16s  %s\n", "Email", "Name", "Type", "Created", "Last sign-in")
		fmt.Println(strings.Repeat("─", 110))
		for _, u := range users {
			last := "never"
			if !u.LastSignInAt.IsZero() {
				last = u.LastSignInAt.Local().Format("2006-01-02 15:04")
			}
			fmt.Printf("%-28s  %-24s  %-22s  %-16s  %s\n",
				truncate(u.Email, 28),
				truncate(u.Name, 24),
				profile.UserType(u.UserType).DisplayName(),
				u.CreatedAt.Local().Format("2006-01-02 15:04"),
				last,
			)
		}
		return nil
	},
}

var usersEventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent sign-in and sign-up attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		s, err := storeFor(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryAuthEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No authentication events found.")
			return nil
		}
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗ " + e.ErrorMessage
			}
			fmt.Printf("%-19s  %-8s  %-28s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Kind, truncate(e.Email, 28), ok)
		}
		return nil
	},
}

func init() {
	usersEventsCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersEventsCmd)
}
