package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blogctl",
	Short: "NovaTech blog backend server and operations CLI",
	Long: `blogctl runs the NovaTech blog REST API and manages its database.

Configuration comes from blog.yml and BLOG_* environment variables; a local
.env file is loaded if present.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	// Local development convenience; missing .env is not an error
	_ = godotenv.Load()

	Execute()
}
