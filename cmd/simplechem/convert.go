package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Replace every {formula} in a document",
		Long: `Convert reads a document from file, or stdin when file is "-" or missing,
and replaces every {formula} span with HTML. With --markdown the document is
rendered as Markdown first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().Bool("markdown", false, "render the document as Markdown")
	cmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	asMarkdown, _ := cmd.Flags().GetBool("markdown")
	output, _ := cmd.Flags().GetString("output")

	cfg, err := loadRender(cmd)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, args)
	if err != nil {
		return err
	}

	var out []byte
	if asMarkdown {
		out = cfg.Markdown().ToHTML(doc)
	} else {
		s, err := cfg.Transformer().Transform(string(doc))
		if err != nil {
			return fmt.Errorf("convert failed: %w", err)
		}
		out = []byte(s)
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func readDocument(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}
