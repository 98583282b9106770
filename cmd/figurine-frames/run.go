package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/figurine"
	"github.com/phanxgames/figurine/svgexport"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// Config holds figurine-frames configuration.
type Config struct {
	Character string  `env:"FIGURINE_CHARACTER"`
	Script    string  `env:"FIGURINE_SCRIPT"`
	Talk      string  `env:"FIGURINE_TALK"`
	Preset    string  `env:"FIGURINE_PRESET"`
	OutDir    string  `env:"FIGURINE_OUT_DIR"  envDefault:"frames"`
	Format    string  `env:"FIGURINE_FORMAT"   envDefault:"json"`
	FPS       float64 `env:"FIGURINE_FPS"      envDefault:"25"`
	Duration  float64 `env:"FIGURINE_DURATION" envDefault:"10"`
	Capture   bool    `env:"FIGURINE_CAPTURE"  envDefault:"true"`
	Verbose   bool    `env:"FIGURINE_VERBOSE"`
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Character, "character", cfg.Character, "path to character JSON")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "path to cue script JSON")
	fs.StringVar(&cfg.Talk, "talk", cfg.Talk, "text spoken from time zero")
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "reel, promo or talking-head")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "json or svg")
	fs.Float64Var(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	fs.Float64Var(&cfg.Duration, "duration", cfg.Duration, "sequence length in seconds")
	fs.BoolVar(&cfg.Capture, "capture", cfg.Capture, "freeze animation loops")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log trait fallbacks")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatSVG {
		return Config{}, fmt.Errorf("unknown format %q", cfg.Format)
	}
	return cfg, nil
}

// frameDump is the JSON written per frame.
type frameDump struct {
	Index    int                        `json:"index"`
	Time     float64                    `json:"time"`
	Subtitle string                     `json:"subtitle,omitempty"`
	State    figurine.PresentationState `json:"state"`
	Viewport figurine.Rect              `json:"viewport"`
	Figure   figurine.Rect              `json:"figureBounds"`
	Scene    *figurine.Scene            `json:"scene"`
}

// Run renders the configured sequence into cfg.OutDir.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	character, err := loadCharacter(cfg.Character)
	if err != nil {
		return err
	}

	base := figurine.DefaultPresentationState()
	base.CaptureMode = cfg.Capture
	base, aspect := figurine.ApplyPreset(base, figurine.Preset(cfg.Preset))

	frames, err := planFrames(cfg, base)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(errOut, nil))
	}
	engine := figurine.NewEngine(figurine.EngineConfig{Logger: logger})

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", cfg.OutDir, err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, f := range frames {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return writeFrame(engine, character, f, aspect, cfg)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "wrote %d %s frames to %s\n", len(frames), cfg.Format, cfg.OutDir)
	return nil
}

func loadCharacter(path string) (figurine.Character, error) {
	if path == "" {
		return figurine.DefaultCharacter(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return figurine.Character{}, fmt.Errorf("read character: %w", err)
	}
	c, err := figurine.DecodeCharacter(data)
	if err != nil {
		return figurine.Character{}, fmt.Errorf("parse character %s: %w", path, err)
	}
	return c, nil
}

func planFrames(cfg Config, base figurine.PresentationState) ([]figurine.Frame, error) {
	tc := figurine.TimelineConfig{FPS: cfg.FPS, Duration: cfg.Duration}
	if cfg.Script == "" {
		return figurine.Timeline(base, cfg.Talk, tc)
	}
	data, err := os.ReadFile(cfg.Script)
	if err != nil {
		return nil, fmt.Errorf("read cue script: %w", err)
	}
	script, err := figurine.LoadCueScript(data)
	if err != nil {
		return nil, err
	}
	return script.Expand(base, tc)
}

func writeFrame(engine *figurine.Engine, c figurine.Character, f figurine.Frame, aspect figurine.AspectRatio, cfg Config) error {
	scene, err := engine.Render(c, f.State)
	if err != nil {
		return fmt.Errorf("render frame %d: %w", f.Index, err)
	}
	viewport := figurine.FitAspect(scene.Viewport, aspect)

	path := filepath.Join(cfg.OutDir, fmt.Sprintf("frame_%05d.%s", f.Index, cfg.Format))
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	switch cfg.Format {
	case FormatSVG:
		err = svgexport.EncodeOptions(file, scene, svgexport.Options{Time: f.Time, Viewport: viewport})
	default:
		enc := json.NewEncoder(file)
		enc.SetIndent("", "  ")
		err = enc.Encode(frameDump{
			Index:    f.Index,
			Time:     f.Time,
			Subtitle: f.Subtitle,
			State:    f.State,
			Viewport: viewport,
			Figure:   scene.FigureBounds(),
			Scene:    scene,
		})
	}
	if err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
