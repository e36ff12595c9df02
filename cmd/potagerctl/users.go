package main

import (
	"fmt"

	"github.com/spf13/cobra"

	userRepoImp "potager/pkg/user/repositoryImp"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Grant premium access to a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserFlag(cmd, args[0], "is_premium", true, "promoted")
	},
}

var deactivateCmd = &cobra.Command{
	Use:   "deactivate <email>",
	Short: "Block a user from logging in",
	Long:  `Deactivated users are rejected on their next request, even with a valid token.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserFlag(cmd, args[0], "is_active", false, "deactivated")
	},
}

func setUserFlag(cmd *cobra.Command, email, column string, value bool, verb string) error {
	users := userRepoImp.New(store)
	u, err := users.FindByEmail(cmd.Context(), email)
	if err != nil {
		return fmt.Errorf("%s: %w", email, err)
	}
	if err := users.Update(cmd.Context(), u.ID, map[string]any{column: value}); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, u.Email)
	return nil
}

func init() {
	rootCmd.AddCommand(promoteCmd)
	rootCmd.AddCommand(deactivateCmd)
}
