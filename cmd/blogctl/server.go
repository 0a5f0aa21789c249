package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/novatech/blog-api/pkg/config"
	"github.com/novatech/blog-api/pkg/db"
	"github.com/novatech/blog-api/pkg/server"
	"github.com/novatech/blog-api/pkg/server/endpoints"
	gormstore "github.com/novatech/blog-api/pkg/server/store/gorm"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the blog application server",
	Long: `Run the blog application server

To run the server requires the environment variables BLOG_TOKEN_SECRET and DATABASE_URL.

By default, database migrations and seeding run on startup. Use --no-migrate
and --no-seed to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			cfg.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			if p, err := strconv.Atoi(port); err == nil {
				cfg.Port = p
			}
		}

		// Fail fast before touching the database
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to DB:", err)
			os.Exit(1)
		}

		noSeed, _ := cmd.Flags().GetBool("no-seed")
		if !noSeed {
			if err := gormstore.Seed(database, cfg.AdminPassword); err != nil {
				fmt.Fprintf(os.Stderr, "Seed failed: %v\n", err)
				os.Exit(1)
			}
		}

		s := server.NewServer(
			cfg,
			database,
			gormstore.NewPostsStore(database),
			gormstore.NewUsersStore(database),
		)

		endpoints.RegisterAll(s)

		stop := make(chan struct{})
		defer close(stop)
		go func() {
			if err := config.Watch(stop); err != nil {
				log.Printf("config watcher stopped: %v", err)
			}
		}()

		log.Printf("Running server at http://%s...\n", cfg.Addr())
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides config)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides config)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
	serverCmd.Flags().Bool("no-seed", false, "skip seeding the default admin and starter posts")
}
