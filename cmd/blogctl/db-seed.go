package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/novatech/blog-api/pkg/config"
	"github.com/novatech/blog-api/pkg/db"
	gormstore "github.com/novatech/blog-api/pkg/server/store/gorm"
)

// dbSeedCmd represents the db seed command
var dbSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the default admin user and starter posts",
	Long: `Seed the default admin user and starter posts.

Seeding is idempotent: tables that already hold rows are left untouched.
The admin password comes from BLOG_ADMIN_PASSWORD (or blog.yml).

Example:
  blogctl db seed`,
	Run: func(cmd *cobra.Command, args []string) {
		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		if err := gormstore.Seed(database, config.Get().AdminPassword); err != nil {
			fmt.Fprintln(os.Stderr, "Seed failed:", err)
			os.Exit(1)
		}

		fmt.Println("Seed complete")
	},
}

func init() {
	dbCmd.AddCommand(dbSeedCmd)
}
