package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/erp-compare-backend/internal/domain"
)

// newPromoteCmd bootstraps the first admin. It writes the role directly
// because no admin exists yet to authorize the change.
func newPromoteCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a user by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			user, err := e.repos.Users.GetByEmail(cmd.Context(), email)
			if err != nil {
				return fmt.Errorf("find %q: %w", email, err)
			}
			if user.Role == domain.UserRoleAdmin {
				fmt.Fprintf(cmd.OutOrStdout(), "User %q is already admin.\n", email)
				return nil
			}

			if _, err := e.repos.Users.UpdateRole(cmd.Context(), user.ID, domain.UserRoleAdmin); err != nil {
				return fmt.Errorf("update role: %w", err)
			}
			e.log.Info("user promoted", "user_id", user.ID, "old_role", user.Role)
			fmt.Fprintf(cmd.OutOrStdout(), "User %q promoted to admin.\n", email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the user to promote")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
