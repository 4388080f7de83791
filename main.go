package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/quire/binding"
	"github.com/ByLCY/quire/config"
	"github.com/ByLCY/quire/layout"
	"github.com/ByLCY/quire/markdown"
	"github.com/ByLCY/quire/renderer"
	canvasrenderer "github.com/ByLCY/quire/renderer/canvas"
)

func main() {
	cmd := &cli.Command{
		Name:      "quire",
		Usage:     "Lay out markdown as a compact paginated PDF",
		ArgsUsage: "FILE... (use - for stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "document title (default: file name)"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory (overrides config)"},
			&cli.StringFlag{Name: "data", Usage: "JSON data bound to ${...} placeholders"},
			&cli.StringFlag{Name: "debug", Usage: "write the layout as JSON to this path (single input only)"},
			&cli.StringFlag{Name: "cleanup", Usage: "inline cleanup: emphasis or full (overrides config)"},
			&cli.IntFlag{Name: "workers", Usage: "documents rendered in parallel (overrides config)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "debug logging"},
		},
		Action: runCommand,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("quire failed", "err", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug("maxprocs", "msg", strings.TrimSpace(fmt.Sprintf(format, args...)))
	}))

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if v := cmd.String("out"); v != "" {
		cfg.Output.Dir = v
	}
	if v := cmd.String("cleanup"); v != "" {
		cfg.Cleanup = v
	}
	if v := cmd.Int("workers"); v > 0 {
		cfg.Workers = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var data any
	if raw := cmd.String("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return errors.Wrap(err, "parse --data JSON")
		}
	}

	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return errors.New("no input files (use - for stdin)")
	}
	if len(inputs) > 1 {
		// 多个输入共用一个标题会写到同一个文件
		if cmd.String("title") != "" {
			return errors.New("--title accepts a single input")
		}
		if cmd.String("debug") != "" {
			return errors.New("--debug accepts a single input")
		}
	}

	jobs := make([]job, 0, len(inputs))
	for _, in := range inputs {
		jobs = append(jobs, job{
			input:     in,
			title:     cmd.String("title"),
			debugPath: cmd.String("debug"),
		})
	}
	return renderAll(ctx, logger, cfg, data, jobs)
}

type job struct {
	input     string
	title     string
	debugPath string
}

// renderAll 并发渲染多个输入，每个任务拥有独立的排版器与画布。
func renderAll(ctx context.Context, logger *slog.Logger, cfg *config.Config, data any, jobs []job) error {
	geo, err := cfg.Geometry()
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := run(j, geo, cfg.CleanupMode(), cfg.Output.Dir, data, logger)
			if err != nil {
				return errors.Wrapf(err, "render %s", j.input)
			}
			logger.Info("written", "input", j.input, "output", path)
			return nil
		})
	}
	return g.Wait()
}

// run 串联读取、占位符替换、布局与渲染，返回输出文件路径。
func run(j job, geo layout.Geometry, cleanup markdown.CleanupMode, outDir string, data any, logger *slog.Logger) (string, error) {
	content, err := readInput(j.input)
	if err != nil {
		return "", err
	}
	title := j.title
	if title == "" {
		title = titleFromPath(j.input)
	}
	if data != nil {
		for _, p := range binding.Unresolved(title+"\n"+content, data) {
			logger.Warn("unresolved placeholder", "input", j.input, "path", p)
		}
		title = binding.Interpolate(title, data)
		content = binding.Interpolate(content, data)
	}

	ts, err := canvasrenderer.NewTypesetter()
	if err != nil {
		return "", err
	}
	doc := layout.Build(title, content, layout.Options{
		Geometry:   geo,
		Typesetter: ts,
		Cleanup:    cleanup,
	})
	logger.Debug("layout",
		"input", j.input,
		"baseFontSize", doc.Profile.BaseFontSize,
		"lineHeightStep", doc.Profile.LineHeightStep,
		"pages", doc.PageCount())

	if j.debugPath != "" {
		if err := writeDebug(doc, j.debugPath); err != nil {
			return "", err
		}
	}

	surface, err := canvasrenderer.NewSurface(geo.Width, geo.Height, title)
	if err != nil {
		return "", err
	}
	return renderer.Emit(doc, surface, outDir)
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(b), nil
}

// titleFromPath 以文件名（去掉扩展名）作为默认标题。
func titleFromPath(path string) string {
	if path == "-" {
		return "document"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeDebug(doc *layout.Document, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return errors.Wrap(err, "create debug directory")
	}
	if err := layout.WriteDebugJSON(doc, debugPath); err != nil {
		return errors.Wrap(err, "write debug JSON")
	}
	return nil
}
