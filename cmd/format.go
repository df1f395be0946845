package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docscan/pkg/docblock"
	"docscan/pkg/formatter"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Re-render or re-indent a doc comment",
	Long: `Parse a doc comment and render it again in canonical form: short description,
long description and tags separated by blank marker lines.

With --reindent the comment is not re-rendered; only the indentation in front
of each marker line is replaced, and every other character is kept. The new
indentation is --prefix when given, else the --depth/--tabs indentation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(cmd); err != nil {
			return err
		}

		source, content, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		depth, _ := cmd.Flags().GetInt("depth")
		useTabs, _ := cmd.Flags().GetBool("tabs")
		reindent, _ := cmd.Flags().GetBool("reindent")
		inPlace, _ := cmd.Flags().GetBool("in-place")
		outputFile, _ := cmd.Flags().GetString("output")
		backup, _ := cmd.Flags().GetBool("backup")

		if depth < 0 {
			return fmt.Errorf("depth cannot be negative: %d", depth)
		}
		if inPlace && source == "<stdin>" {
			return fmt.Errorf("--in-place requires a file argument")
		}

		f := formatter.New()
		if useTabs {
			f = formatter.NewWithTabs()
		}

		var formatted string
		switch {
		case reindent && cmd.Flags().Changed("prefix"):
			prefix, _ := cmd.Flags().GetString("prefix")
			formatted = f.Reindent(content, prefix)
		case reindent:
			formatted = f.ReindentDepth(content, depth)
		default:
			formatted = f.FormatComment(docblock.Parse(content), depth) + "\n"
		}

		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Formatted %s at depth %d\n", source, depth)
		}

		switch {
		case inPlace:
			return writeInPlace(cmd, source, formatted, backup)
		case outputFile != "":
			if err := os.WriteFile(outputFile, []byte(formatted), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			return nil
		default:
			fmt.Fprint(cmd.OutOrStdout(), formatted)
			return nil
		}
	},
}

func init() {
	formatCmd.Flags().IntP("depth", "d", 0, "Indentation depth of the rendered comment")
	formatCmd.Flags().Bool("tabs", false, "Indent with tabs instead of spaces")
	formatCmd.Flags().Bool("reindent", false, "Only replace the indentation before each marker line")
	formatCmd.Flags().String("prefix", "", "Indentation to use with --reindent instead of --depth/--tabs")
	formatCmd.Flags().BoolP("in-place", "i", false, "Update the file in place")
	formatCmd.Flags().StringP("output", "o", "", "Write output to specific file")
	formatCmd.Flags().BoolP("backup", "b", false, "Create backup when updating in place")
}
