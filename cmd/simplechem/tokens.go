package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/simplechem/internal/dto"
	"github.com/DjordjeVuckovic/simplechem/internal/formula"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [formula...]",
		Short: "Show how a formula is tokenized",
		RunE:  runTokens,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().String("color", "auto", "colorize output (auto|on|off)")
	return cmd
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	text, err := formulaInput(cmd, args)
	if err != nil {
		return err
	}

	tokens, err := formula.Tokenize(text)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	switch format {
	case "pretty":
		return printTokens(cmd.OutOrStdout(), tokens, colorFlag)
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(dto.NewTokens(tokens))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

var classColors = map[formula.Class]color.Attribute{
	formula.Number:      color.FgCyan,
	formula.Name:        color.FgGreen,
	formula.Superscript: color.FgMagenta,
	formula.Brace:       color.FgYellow,
	formula.Char:        color.FgWhite,
}

func printTokens(w io.Writer, tokens []formula.Token, mode string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, tok := range tokens {
		c := color.New(classColors[tok.Class])
		switch mode {
		case "on":
			c.EnableColor()
		case "off":
			c.DisableColor()
		}
		sub := formula.Substitute(tok.Text)
		if sub == tok.Text {
			sub = ""
		}
		if _, err := fmt.Fprintf(tw, "%s\t%q\t%q\t%s\n", c.Sprint(tok.Class), tok.Raw, tok.Text, sub); err != nil {
			return err
		}
	}
	return tw.Flush()
}
