// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/windpalette/internal/config"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/users"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
	Long:  "List, promote and delete accounts. Accounts are created on first Google sign-in.",
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fatal("%v", err)
		}

		userList, err := users.ListUsers(db.GetDB())
		if err != nil {
			fatal("listing users: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEMAIL\tNAME\tADMIN\tCREATED")
		for _, u := range userList {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", u.ID, u.Email, u.Name, u.IsAdmin, u.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete <email>",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fatal("%v", err)
		}

		email := args[0]
		user, err := users.GetUserByEmail(db.GetDB(), email)
		if err != nil {
			fatal("%v", err)
		}

		if err := users.DeleteUser(db.GetDB(), user.ID); err != nil {
			fatal("deleting user: %v", err)
		}

		fmt.Printf("User deleted: %s\n", email)
	},
}

var revokeAdmin bool

var userPromoteCmd = &cobra.Command{
	Use:   "promote <email>",
	Short: "Grant or revoke administrator access",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fatal("%v", err)
		}

		user, err := users.GetUserByEmail(db.GetDB(), args[0])
		if err != nil {
			fatal("%v", err)
		}

		if err := users.SetAdmin(db.GetDB(), user.ID, !revokeAdmin); err != nil {
			fatal("updating user: %v", err)
		}

		if revokeAdmin {
			fmt.Printf("Administrator access revoked: %s\n", user.Email)
		} else {
			fmt.Printf("Administrator access granted: %s\n", user.Email)
		}
	},
}

func init() {
	userPromoteCmd.Flags().BoolVar(&revokeAdmin, "revoke", false, "remove administrator access instead")

	userCmd.AddCommand(userListCmd)
	userCmd.AddCommand(userDeleteCmd)
	userCmd.AddCommand(userPromoteCmd)
	rootCmd.AddCommand(userCmd)
}

// initSystemDB initializes the database connection
func initSystemDB() error {
	if err := initConfig(); err != nil {
		return err
	}

	return db.InitDB(config.GetString("database.type"), config.GetString("database.path"))
}
