package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/fintrack/internal/user"
)

var (
	signupFirstName string
	signupLastName  string
	signupUsername  string
	signupPassword  string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		dto := user.RegistrationDTO{
			FirstName: signupFirstName,
			LastName:  signupLastName,
			Username:  signupUsername,
			Password:  signupPassword,
		}

		if dto.FirstName == "" {
			if dto.FirstName, err = promptLine("First name"); err != nil {
				return err
			}
		}
		if dto.LastName == "" {
			if dto.LastName, err = promptLine("Last name"); err != nil {
				return err
			}
		}
		if dto.Username == "" {
			if dto.Username, err = promptLine("Email"); err != nil {
				return err
			}
		}
		if dto.Password == "" {
			if dto.Password, err = promptPassword("Password"); err != nil {
				return err
			}
		}

		u, err := a.Users.Register(cmd.Context(), dto)
		if err != nil {
			return err
		}

		fmt.Printf("Signup successful. Welcome, %s!\n", u.FirstName)
		return nil
	},
}

func init() {
	signupCmd.Flags().StringVar(&signupFirstName, "first-name", "", "First name")
	signupCmd.Flags().StringVar(&signupLastName, "last-name", "", "Last name")
	signupCmd.Flags().StringVarP(&signupUsername, "username", "u", "", "Email address")
	signupCmd.Flags().StringVarP(&signupPassword, "password", "p", "", "Password (prompted when omitted)")
}
