package main

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/simplechem/internal/dto"
	"github.com/DjordjeVuckovic/simplechem/internal/formula"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [formula...]",
		Short: "Render one formula",
		Long:  `Render renders a single formula, given as arguments or on stdin, without the surrounding braces.`,
		RunE:  runRender,
	}
	cmd.Flags().String("format", "html", "output format (html|json|tree)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadRender(cmd)
	if err != nil {
		return err
	}

	text, err := formulaInput(cmd, args)
	if err != nil {
		return err
	}

	span, err := formula.Parse(text, cfg.FormulaOptions()...)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "html":
		if err := span.WriteHTML(out); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	case "tree":
		_, err = fmt.Fprintln(out, span.String())
		return err
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(dto.RenderResponse{HTML: span.HTML(), Tree: dto.NewTree(span)})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
