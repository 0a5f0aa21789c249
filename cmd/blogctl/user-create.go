package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/novatech/blog-api/pkg/authn"
	"github.com/novatech/blog-api/pkg/db"
	"github.com/novatech/blog-api/pkg/model"
	gormstore "github.com/novatech/blog-api/pkg/server/store/gorm"
)

// userCreateAdminCmd represents the user create-admin command
var userCreateAdminCmd = &cobra.Command{
	Use:   "create-admin USERNAME PASSWORD",
	Short: "Create an admin user",
	Long: `Create an admin user with the given username and password.

Example:
  blogctl user create-admin editor s3cret`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username, password := args[0], args[1]

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		hash, err := authn.HashPassword(password)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to hash password:", err)
			os.Exit(1)
		}

		users := gormstore.NewUsersStore(database)
		user, err := users.CreateUser(username, hash, model.RoleAdmin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create user:", err)
			os.Exit(1)
		}

		fmt.Printf("Created admin user %q (id %d)\n", user.Username, user.ID)
	},
}

func init() {
	userCmd.AddCommand(userCreateAdminCmd)
}
