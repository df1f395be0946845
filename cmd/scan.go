package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docscan/pkg/docblock"
)

var (
	headingColor = color.New(color.Bold)
	tagColor     = color.New(color.FgCyan, color.Bold)
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Parse a doc comment and print its descriptions and tags",
	Long: `Parse a doc comment block and print its short description, long description
and tags. The comment is read from the given file, or from stdin when no file
(or "-") is given. The output can be in JSON format for further processing or
human-readable format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		source, content, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		format, err := outputFormat(cmd, cfg)
		if err != nil {
			return err
		}
		withAnnotations, _ := cmd.Flags().GetBool("annotations")

		block := docblock.New(content, cfg.NameInformation())

		var annotations []docblock.Annotation
		if withAnnotations {
			annotations, err = block.Annotations(cfg.Registry())
			if err != nil {
				return err
			}
		}

		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Scanned %s: %d lines, %d tags\n",
				source, strings.Count(content, "\n")+1, len(block.Tags()))
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return outputScanJSON(out, source, block, annotations, withAnnotations)
		default:
			return outputScanHuman(out, source, block, annotations, withAnnotations)
		}
	},
}

func init() {
	scanCmd.Flags().StringP("format", "f", "human", "Output format (human, json)")
	scanCmd.Flags().BoolP("annotations", "a", false, "Resolve tags into annotations")
}

type jsonAnnotation struct {
	Tag  string              `json:"tag"`
	Data docblock.Annotation `json:"data"`
}

func outputScanJSON(out io.Writer, source string, block *docblock.DocBlock, annotations []docblock.Annotation, withAnnotations bool) error {
	output := struct {
		Source string `json:"source"`
		docblock.Result
		Annotations []jsonAnnotation `json:"annotations,omitempty"`
	}{
		Source: source,
		Result: block.Result(),
	}

	if withAnnotations {
		output.Annotations = make([]jsonAnnotation, 0, len(annotations))
		for _, a := range annotations {
			output.Annotations = append(output.Annotations, jsonAnnotation{Tag: a.TagName(), Data: a})
		}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputScanHuman(out io.Writer, source string, block *docblock.DocBlock, annotations []docblock.Annotation, withAnnotations bool) error {
	fmt.Fprintf(out, "Doc comment: %s\n", source)
	fmt.Fprintf(out, "=====================================\n\n")

	headingColor.Fprint(out, "Short description:")
	fmt.Fprintf(out, " %s\n", block.ShortDescription())

	headingColor.Fprint(out, "Long description:")
	if long := block.LongDescription(); long != "" {
		fmt.Fprintln(out)
		printIndented(out, long, "  ")
	} else {
		fmt.Fprintln(out, " (none)")
	}

	tags := block.Tags()
	fmt.Fprintln(out)
	headingColor.Fprintf(out, "Tags (%d):\n", len(tags))
	for _, tag := range tags {
		lines := strings.Split(tag.Value, "\n")
		fmt.Fprint(out, "  ")
		tagColor.Fprint(out, tag.Name)
		if lines[0] != "" {
			fmt.Fprintf(out, " %s", lines[0])
		}
		fmt.Fprintln(out)
		for _, line := range lines[1:] {
			fmt.Fprintf(out, "    %s\n", line)
		}
	}

	if !withAnnotations {
		return nil
	}

	fmt.Fprintln(out)
	headingColor.Fprintf(out, "Annotations (%d):\n", len(annotations))
	for _, a := range annotations {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to encode annotation %s: %w", a.TagName(), err)
		}
		fmt.Fprint(out, "  ")
		tagColor.Fprint(out, a.TagName())
		fmt.Fprintf(out, " %s\n", data)
	}

	return nil
}

func printIndented(out io.Writer, text, indent string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintf(out, "%s%s\n", indent, line)
	}
}
