package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// secretCmd represents the secret command
var secretCmd = &cobra.Command{
	Use:   "secret",
	Short: "Manage the token-signing secret",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'secret' requires a subcommand (generate)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// secretGenerateCmd represents the secret generate command
var secretGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token-signing secret",
	Long: `
Generate a token-signing secret

Use this command to generate a new Base64-encoded 256 bit secret. Once
generated, the secret should be placed into the environment of the blog
server. It signs every access token the server issues.

Example:

$ export BLOG_TOKEN_SECRET="$(blogctl secret generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		bytes := make([]byte, 32)
		if _, err := rand.Read(bytes); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to generate secret:", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(bytes))
	},
}

func init() {
	rootCmd.AddCommand(secretCmd)
	secretCmd.AddCommand(secretGenerateCmd)
}
