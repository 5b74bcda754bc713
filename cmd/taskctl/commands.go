package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sathvik89/Taskease/domain/apperrors"
	"github.com/sathvik89/Taskease/infrastructure/postgres"
)

func newMigrateCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := postgres.Migrate(current().db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}

func newUsersCmd(current func() *env) *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := current().users.List(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tADMIN")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.IsAdmin)
			}
			return w.Flush()
		},
	}
}

func newAdminCmd(current func() *env, use, short string, isAdmin bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <email>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := current().userService.SetAdmin(cmd.Context(), args[0], isAdmin)
			if errors.Is(err, apperrors.ErrUserNotFound) {
				return fmt.Errorf("no user with email %q", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s admin=%t\n", user.Email, user.IsAdmin)
			return nil
		},
	}
}

func newPurgeTrashCmd(current func() *env) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge-trash",
		Short: "Permanently delete tasks trashed longer than --older-than ago",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan < 0 {
				return errors.New("--older-than cannot be negative")
			}
			cutoff := time.Now().UTC().Add(-olderThan)
			purged, err := current().taskService.PurgeTrash(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d task(s) trashed before %s\n", purged, cutoff.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 30*24*time.Hour, "minimum time in the trash")
	return cmd
}
