package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ccs/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize ccs configuration",
	Long:  "Creates a .ccs/ directory with default configuration in the current directory",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, ".ccs", "config.json")
	if _, statErr := os.Stat(cfgPath); statErr == nil && !initForce {
		// Already initialized is success, so repeated init stays CI-friendly.
		fmt.Println("ccs already initialized.")
		fmt.Printf("Configuration at: %s\n", cfgPath)
		fmt.Println("\nRun 'ccs init --force' to overwrite it.")
		return nil
	}

	if err := config.DefaultConfig().Save(cwd); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	fmt.Println("ccs initialized.")
	fmt.Printf("Configuration at: %s\n", cfgPath)
	return nil
}
