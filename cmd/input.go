package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docscan/pkg/config"
)

// readInput returns the comment text from the file named in args, or from
// stdin when no file is given or the name is "-".
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return "<stdin>", string(content), nil
	}

	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return filename, string(content), nil
}

// loadConfig loads the configuration and applies its color setting
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, path, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if verbose {
		if path != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Using config: %s\n", path)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No %s found, using defaults\n", config.FileName)
		}
	}

	switch {
	case noColor:
		color.NoColor = true
	case cfg.Color != nil:
		color.NoColor = !*cfg.Color
	}

	return cfg, nil
}

// outputFormat returns the --format flag when set, else the configured format
func outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if !cmd.Flags().Changed("format") {
		return cfg.Format, nil
	}
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "human", "json":
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// writeInPlace writes content to a file, optionally creating a backup
func writeInPlace(cmd *cobra.Command, filename, content string, backup bool) error {
	if backup {
		backupFile := filename + ".bak"
		originalContent, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read original file for backup: %w", err)
		}

		if err := os.WriteFile(backupFile, originalContent, 0644); err != nil {
			return fmt.Errorf("failed to create backup file: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "Backup created: %s\n", backupFile)
	}

	return os.WriteFile(filename, []byte(content), 0644)
}
