package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"docscan/pkg/docblock"
)

var tokenColors = map[docblock.TokenType]*color.Color{
	docblock.TokenCommentStart: color.New(color.FgYellow),
	docblock.TokenCommentEnd:   color.New(color.FgYellow),
	docblock.TokenAsterisk:     color.New(color.FgYellow),
	docblock.TokenTag:          color.New(color.FgCyan, color.Bold),
	docblock.TokenText:         color.New(color.FgGreen),
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream of a doc comment",
	Long: `Tokenize a doc comment block and print every token with its position.
Joining the token values gives back the input byte for byte.`,
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

		tokens := docblock.Tokenize(content)
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "Tokenized %s: %d tokens\n", source, len(tokens))
		}

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return outputTokensJSON(out, tokens)
		default:
			outputTokensHuman(out, tokens)
			return nil
		}
	},
}

func init() {
	tokensCmd.Flags().StringP("format", "f", "human", "Output format (human, json)")
}

func outputTokensJSON(out io.Writer, tokens []docblock.Token) error {
	type jsonToken struct {
		Type   string `json:"type"`
		Value  string `json:"value"`
		Line   int    `json:"line"`
		Column int    `json:"column"`
		Offset int    `json:"offset"`
	}

	jsonTokens := make([]jsonToken, 0, len(tokens))
	for _, token := range tokens {
		jsonTokens = append(jsonTokens, jsonToken{
			Type:   token.Type.String(),
			Value:  token.Value,
			Line:   token.Line,
			Column: token.Column,
			Offset: token.Offset,
		})
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(jsonTokens)
}

func outputTokensHuman(out io.Writer, tokens []docblock.Token) {
	for _, token := range tokens {
		fmt.Fprintf(out, "%4d:%-4d ", token.Line, token.Column)
		kind := fmt.Sprintf("%-18s", token.Type)
		if c, ok := tokenColors[token.Type]; ok {
			c.Fprint(out, kind)
		} else {
			fmt.Fprint(out, kind)
		}
		fmt.Fprintf(out, " %q\n", token.Value)
	}
}
