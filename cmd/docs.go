package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd writes Markdown documentation for every command to /docs
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for the shiver commands",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := os.MkdirAll("./docs", 0755); err != nil {
			log.Fatalf("failed to create the docs directory: %v", err)
		}
		if err := doc.GenMarkdownTree(rootCmd, "./docs"); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
