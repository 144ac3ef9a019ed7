package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		u, err := a.requireUser(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("%s %s <%s>\n", u.FirstName, u.LastName, u.Username)
		if t, err := time.Parse(time.RFC3339, u.CreatedAt); err == nil {
			fmt.Printf("Member since %s\n", t.Format("January 2006"))
		}
		return nil
	},
}
