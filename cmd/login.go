package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		username := loginUsername
		if username == "" {
			if username, err = promptLine("Email"); err != nil {
				return err
			}
		}

		password := loginPassword
		if password == "" {
			if password, err = promptPassword("Password"); err != nil {
				return err
			}
		}

		u, err := a.Users.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}

		fmt.Printf("Welcome back, %s!\n", u.FirstName)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Email address")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}
