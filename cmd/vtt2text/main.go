package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alexflint/go-arg"

	"github.com/nguyentantai21042004/vtt2text/internal/clipboard"
	"github.com/nguyentantai21042004/vtt2text/internal/config"
	"github.com/nguyentantai21042004/vtt2text/internal/converter"
	"github.com/nguyentantai21042004/vtt2text/internal/logger"
	"github.com/nguyentantai21042004/vtt2text/internal/watcher"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type cliArgs struct {
	Input     string `arg:"positional" help:"path to the input .vtt file (optional if -i is used)"`
	InputDir  string `arg:"-i,--input-path" help:"directory containing .vtt files"`
	OutputDir string `arg:"-o,--output-path" help:"output directory for transcripts (required if -i is used)"`
	Config    string `arg:"-c,--config" help:"YAML config file [default: vtt2text.yaml if present]"`
	Format    string `arg:"-f,--format" help:"output format: txt or docx"`
	Join      bool   `arg:"-j,--join" help:"join the transcript into a single paragraph"`
	Copy      bool   `arg:"--copy" help:"also copy the transcript to the clipboard (single file only)"`
	Watch     bool   `arg:"-w,--watch" help:"after the batch, keep converting new files in the input directory"`
	LogLevel  string `arg:"--log-level" help:"debug, info, warn or error"`
}

func (cliArgs) Description() string {
	return "Convert VTT subtitle file(s) to plain text transcript(s)."
}

func main() {
	var args cliArgs
	p := arg.MustParse(&args)

	if err := args.validate(); err != nil {
		p.WriteUsage(os.Stderr)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, args)
	stop()
	os.Exit(code)
}

func (a *cliArgs) validate() error {
	switch {
	case a.InputDir != "" && a.OutputDir == "":
		return errors.New("-o/--output-path must be specified if -i/--input-path is used")
	case a.OutputDir != "" && a.InputDir == "":
		return errors.New("-i/--input-path must be specified if -o/--output-path is used")
	case a.Input != "" && a.InputDir != "":
		return errors.New("give either an input file or -i/--input-path, not both")
	case a.Input == "" && a.InputDir == "":
		return errors.New("an input file or -i/--input-path is required")
	case a.Watch && a.InputDir == "":
		return errors.New("--watch requires -i/--input-path")
	case a.Copy && a.Input == "":
		return errors.New("--copy only applies to a single input file")
	}

	if a.Format != "" {
		switch strings.ToLower(a.Format) {
		case config.FormatText, config.FormatDocx:
		default:
			return fmt.Errorf("unknown format %q (use %s or %s)", a.Format, config.FormatText, config.FormatDocx)
		}
	}
	if a.LogLevel != "" && !logger.ValidLevel(a.LogLevel) {
		return fmt.Errorf("unknown log level %q", a.LogLevel)
	}
	return nil
}

// run converts according to args and returns the process exit code
func run(ctx context.Context, args cliArgs) int {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return exitFailure
	}

	log := logger.New(cfg.Logging.Level)
	conv := converter.New(cfg, log)

	if args.InputDir != "" {
		return runBatch(ctx, args, cfg, conv, log)
	}
	return runSingle(ctx, args, cfg, conv, log)
}

// loadConfig reads the config file and lays the command line flags over it
func loadConfig(args cliArgs) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.Config != "" {
		cfg, err = config.Load(args.Config)
	} else {
		cfg, err = config.LoadOrDefault(config.DefaultPath)
	}
	if err != nil {
		return nil, err
	}

	if args.Format != "" {
		cfg.Output.Format = args.Format
	}
	if args.Join {
		cfg.Output.JoinLines = true
	}
	if args.LogLevel != "" {
		cfg.Logging.Level = args.LogLevel
	}
	return cfg, cfg.Validate()
}

func runSingle(ctx context.Context, args cliArgs, cfg *config.Config, conv converter.Converter, log logger.Logger) int {
	result, err := conv.ConvertFile(ctx, args.Input)
	if err != nil {
		log.Error(ctx, "Error: %v", err)
		return exitFailure
	}

	if args.Copy {
		if err := clipboard.Copy(converter.Render(result.Lines, cfg.Output.JoinLines)); err != nil {
			log.Warn(ctx, "Failed to copy transcript to clipboard: %v", err)
		} else {
			log.Info(ctx, "Transcript copied to clipboard")
		}
	}
	return exitOK
}

func runBatch(ctx context.Context, args cliArgs, cfg *config.Config, conv converter.Converter, log logger.Logger) int {
	report, err := conv.ConvertDir(ctx, args.InputDir, args.OutputDir)
	if err != nil {
		log.Error(ctx, "Error: %v", err)
		return exitFailure
	}

	code := exitOK
	if report.HasFailures() {
		log.Error(ctx, "%d of %d files could not be converted", len(report.Failed), len(report.Failed)+len(report.Converted))
		code = exitFailure
	}

	if !args.Watch {
		return code
	}

	handler := func(ctx context.Context, path string) error {
		_, err := conv.Convert(ctx, path, converter.OutputPath(path, args.OutputDir, cfg.Extension()))
		return err
	}

	w, err := watcher.New(args.InputDir, handler, log, cfg.Performance.MaxConcurrent, cfg.Watch.SettleDelay)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return exitFailure
	}
	defer w.Stop()

	log.Info(ctx, "Watching %s for new subtitles, output: %s. Press Ctrl+C to stop", args.InputDir, args.OutputDir)
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return exitFailure
	}
	return code
}
