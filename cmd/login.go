package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> [name]",
	Short: "Sign in, creating the profile if needed",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, cleanup, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		name := ""
		if len(args) > 1 {
			name = strings.Join(args[1:], " ")
		}

		p, err := svcs.ident.SignIn(cmd.Context(), args[0], name)
		if err != nil {
			return err
		}
		fmt.Printf("Signed in as %s <%s>\n", p.DisplayName, p.Email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, cleanup, err := buildServices(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if svcs.ident.Current() == nil {
			fmt.Println("Already signed out.")
			return nil
		}
		if err := svcs.ident.SignOut(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("Signed out.")
		return nil
	},
}
