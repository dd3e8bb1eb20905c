package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/simplechem/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "simplechem",
		Short: "Render plain text chemical formulas as HTML",
		Long: `simplechem formats chemical equations written as plain text.

Numbers after an element, a bracket or a superscript become subscripts,
^x and ^(text) mark superscripts, and * -> <-> <> hnu are replaced with
· → ⇄ ⇌ hν.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "render config YAML (defaults to $CONFIG_PATH)")
	root.PersistentFlags().String("class", "", "class attribute of the formula container (empty omits it)")
	root.PersistentFlags().String("tag", "", "tag of the formula container")
	root.PersistentFlags().String("trigger", "", "only transform spans written as trigger{...}")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newTokensCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newServeCmd())
	return root
}

// loadRender resolves the render config: file, then environment, then flags.
func loadRender(cmd *cobra.Command) (*config.Render, error) {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	var cfg *config.Render
	if path != "" {
		cfg, err = config.LoadRenderFromFile(path)
	} else {
		cfg, err = config.LoadRender()
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("class") {
		class, _ := flags.GetString("class")
		cfg.Class = &class
	}
	if flags.Changed("tag") {
		cfg.Tag, _ = flags.GetString("tag")
	}
	if flags.Changed("trigger") {
		cfg.Trigger, _ = flags.GetString("trigger")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

// formulaInput joins the arguments, or reads stdin when there are none.
func formulaInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
