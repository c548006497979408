package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-drift/retain/internal/config"
	"github.com/go-drift/retain/pkg/errors"
)

type options struct {
	configPath string
	out        string
	width      int
	height     int
	bounds     bool
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "sandbox",
		Short: "Headless shell for the retained widget toolkit",
		Long: `sandbox builds a small demo scene, reconciles it a second time with
reordered children, replays the input script from retain.yaml and renders
the result.

Examples:
  sandbox render                          # write frame.png at 800x600
  sandbox render --config demo.yaml --out shot.bmp
  sandbox tree --width 1024 --bounds      # print the widget tree only`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file (defaults to ./"+config.FileName+" if present)")
	root.PersistentFlags().IntVar(&opts.width, "width", 0, "Override the window width")
	root.PersistentFlags().IntVar(&opts.height, "height", 0, "Override the window height")
	root.PersistentFlags().BoolVar(&opts.bounds, "bounds", false, "Stroke layout bounds")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug events and stack traces")

	render := &cobra.Command{
		Use:   "render",
		Short: "Render the demo scene to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(out, opts)
		},
	}
	render.Flags().StringVarP(&opts.out, "out", "o", "frame.png", "Output image (.png, .bmp, .tif)")

	tree := &cobra.Command{
		Use:   "tree",
		Short: "Print the demo widget tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(out, opts)
		},
	}

	root.AddCommand(render, tree)
	return root
}

// loadConfig reads the config and applies flag overrides.
func loadConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.Load(opts.configPath)
	} else {
		var dir string
		dir, err = os.Getwd()
		if err == nil {
			cfg, err = config.LoadOptional(dir)
		}
	}
	if err != nil {
		return nil, &errors.GuiError{Op: "sandbox.loadConfig", Kind: errors.KindConfig, Err: err}
	}

	if opts.width > 0 {
		cfg.Window.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Window.Height = opts.height
	}
	if opts.bounds {
		cfg.Debug.ShowLayoutBounds = true
	}
	if opts.verbose {
		cfg.Debug.VerboseErrors = true
	}
	return cfg, nil
}

func start(opts *options) (*session, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Debug.VerboseErrors})

	logger := slog.New(slog.DiscardHandler)
	if cfg.Debug.VerboseErrors {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	s := newSession(cfg, logger)
	if err := s.run(); err != nil {
		errors.Report(asGuiError(err))
		return nil, err
	}
	return s, nil
}

func runRender(out io.Writer, opts *options) error {
	s, err := start(opts)
	if err != nil {
		return err
	}
	defer s.close()

	img, err := s.snapshot()
	if err != nil {
		return err
	}
	if err := writeImage(opts.out, img); err != nil {
		return err
	}
	s.report(out)
	fmt.Fprintf(out, "wrote %s\n", opts.out)
	return nil
}

func runTree(out io.Writer, opts *options) error {
	s, err := start(opts)
	if err != nil {
		return err
	}
	defer s.close()

	s.render(nil)
	s.report(out)
	return nil
}

func asGuiError(err error) *errors.GuiError {
	if ge, ok := err.(*errors.GuiError); ok {
		return ge
	}
	return &errors.GuiError{Op: "sandbox", Kind: errors.KindUnknown, Err: err}
}
