// Command gallery opens the scene gallery demos in a native window.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"scene-gallery/internal/config"
	"scene-gallery/pages"
	"scene-gallery/panel"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "gallery",
		Short:        "Interactive 3D scene demos with live parameter panels",
		SilenceUsage: true,
	}
	root.AddCommand(newListCmd(), newRunCmd(), newPresetsCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listPages(cmd.OutOrStdout())
		},
	}
}

func listPages(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, p := range pages.All() {
		fmt.Fprintf(tw, "%s\t%s\n", p.Route, p.Title)
	}
	return tw.Flush()
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets <page>",
		Short: "Print a page's default parameters as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := pages.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown page %q", args[0])
			}
			return panel.EncodePreset(cmd.OutOrStdout(), p.DefaultSnapshot())
		},
	}
}

type runOptions struct {
	configPath string
	width      int
	height     int
	logLevel   string
	preset     string
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run [page]",
		Short: "Open a page in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg, opts, args); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts.preset, logger, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", config.DefaultPath, "config file")
	f.IntVar(&opts.width, "width", 0, "window width (overrides config)")
	f.IntVar(&opts.height, "height", 0, "window height (overrides config)")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	f.StringVar(&opts.preset, "preset", "", "preset file to import after the page starts")
	return cmd
}

// applyFlags lays explicitly set flags and the page argument over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts runOptions, args []string) error {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Window.Width = opts.width
	}
	if f.Changed("height") {
		cfg.Window.Height = opts.height
	}
	if f.Changed("log-level") {
		if _, err := config.ParseLevel(opts.logLevel); err != nil {
			return err
		}
		cfg.Log.Level = opts.logLevel
	}
	if len(args) == 1 {
		cfg.Page = args[0]
	}
	cfg.Validate()
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
