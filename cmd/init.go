package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"docscan/pkg/config"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Write a default .docscan.yaml configuration file",
	Long: `Write a commented default .docscan.yaml configuration file into the given
directory (the current directory when omitted).

Examples:
  # Initialize .docscan.yaml for current directory
  docscan init

  # Replace an existing file
  docscan init --overwrite src/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("overwrite", false, "Overwrite existing .docscan.yaml file if it exists")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	info, err := os.Stat(targetDir)
	if err != nil {
		return fmt.Errorf("failed to access %s: %w", targetDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", targetDir)
	}

	configFile := filepath.Join(targetDir, config.FileName)
	if _, err := os.Stat(configFile); err == nil && !overwrite {
		return fmt.Errorf("%s already exists, use --overwrite to replace it", configFile)
	}

	// The template must stay loadable.
	if _, err := config.Parse([]byte(config.Template)); err != nil {
		return fmt.Errorf("invalid configuration template: %w", err)
	}

	if err := os.WriteFile(configFile, []byte(config.Template), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFile, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFile)
	return nil
}
