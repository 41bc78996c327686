package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ccs/internal/treesitter"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages ccs can analyze",
	Args:  cobra.NoArgs,
	Run:   runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) {
	for _, lang := range treesitter.Supported() {
		fmt.Println(lang)
	}
	if !treesitter.IsAvailable() {
		fmt.Println("\nNote: this binary was built without CGO; parsing is unavailable.")
	}
}
