package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/musecli/muse/pkg/poster"
)

// posterOpts holds the command-line flags for the poster command.
type posterOpts struct {
	width       int
	height      int
	layers      int
	wobble      float64
	radius      float64
	seed        int64
	background  string
	stroke      bool
	strokeAlpha float64
	output      string
	preset      string
}

// posterCommand creates the poster generation command.
//
// Flags override preset values, which override defaults. The seed flag makes
// output reproducible; without it each run produces a new composition and
// the command has no way to regenerate it.
func (c *CLI) posterCommand() *cobra.Command {
	defaults := poster.DefaultParams()
	opts := posterOpts{
		width:       defaults.Width,
		height:      defaults.Height,
		layers:      defaults.Layers,
		wobble:      defaults.Wobble,
		radius:      defaults.BaseRadius,
		background:  defaults.Background.Hex(),
		strokeAlpha: defaults.StrokeAlpha,
		output:      "poster.png",
	}

	cmd := &cobra.Command{
		Use:   "poster",
		Short: "Generate a procedural poster as PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPoster(cmd, &opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "canvas height in pixels")
	cmd.Flags().IntVar(&opts.layers, "layers", opts.layers, "number of blob layers")
	cmd.Flags().Float64Var(&opts.wobble, "wobble", opts.wobble, "contour noise amount")
	cmd.Flags().Float64Var(&opts.radius, "radius", opts.radius, "base blob radius as a fraction of the canvas")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for reproducible output")
	cmd.Flags().StringVar(&opts.background, "bg", opts.background, "background color as hex (#rrggbb)")
	cmd.Flags().BoolVar(&opts.stroke, "stroke", false, "draw contour outlines")
	cmd.Flags().Float64Var(&opts.strokeAlpha, "stroke-alpha", opts.strokeAlpha, "outline alpha")
	cmd.Flags().StringVarP(&opts.output, "out", "o", opts.output, "output file path")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "TOML preset file")

	return cmd
}

func (c *CLI) runPoster(cmd *cobra.Command, opts *posterOpts) error {
	params := poster.DefaultParams()
	if opts.preset != "" {
		var err error
		params, err = loadPreset(opts.preset)
		if err != nil {
			return err
		}
		c.Logger.Debug("loaded preset", "path", opts.preset)
	}

	// Only flags the user actually set override the preset.
	flags := cmd.Flags()
	if flags.Changed("width") {
		params.Width = opts.width
	}
	if flags.Changed("height") {
		params.Height = opts.height
	}
	if flags.Changed("layers") {
		params.Layers = opts.layers
	}
	if flags.Changed("wobble") {
		params.Wobble = opts.wobble
	}
	if flags.Changed("radius") {
		params.BaseRadius = opts.radius
	}
	if flags.Changed("seed") {
		seed := opts.seed
		params.Seed = &seed
	}
	if flags.Changed("bg") {
		bg, err := poster.ParseColor(opts.background)
		if err != nil {
			return err
		}
		params.Background = bg
	}
	if flags.Changed("stroke") {
		params.Stroke = opts.stroke
	}
	if flags.Changed("stroke-alpha") {
		params.StrokeAlpha = opts.strokeAlpha
	}

	prog := newProgress(c.Logger)
	buf, err := poster.Generate(params)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %dx%d poster with %d layers", params.Width, params.Height, params.Layers))

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()
	if err := buf.EncodePNG(f); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	printSuccess("Poster written")
	printFile(opts.output)
	if params.Seed != nil {
		printDetail("seed: %d", *params.Seed)
	} else {
		printDetail("unseeded run, pass --seed to reproduce")
	}
	return nil
}
