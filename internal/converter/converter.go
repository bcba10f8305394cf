package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nguyentantai21042004/vtt2text/internal/config"
	"github.com/nguyentantai21042004/vtt2text/internal/transcript"
)

// SubtitleExt is the input extension picked up in batch and watch mode
const SubtitleExt = ".vtt"

// ConvertFile writes the transcript alongside the input file
func (c *implConverter) ConvertFile(ctx context.Context, inputPath string) (Result, error) {
	return c.Convert(ctx, inputPath, OutputPath(inputPath, "", c.cfg.Extension()))
}

// Convert reads one subtitle file, assembles its transcript and writes it
func (c *implConverter) Convert(ctx context.Context, inputPath, outputPath string) (Result, error) {
	result := Result{InputPath: inputPath, OutputPath: outputPath}

	info, err := os.Stat(inputPath)
	if err != nil {
		return result, newError(inputPath, err, FileNotFound)
	}
	if info.IsDir() {
		return result, &Error{Kind: InvalidArguments, Path: inputPath, Err: errors.New("input is a directory; expected a file")}
	}
	if filepath.Clean(inputPath) == filepath.Clean(outputPath) {
		return result, &Error{Kind: InvalidArguments, Path: inputPath, Err: errors.New("output would overwrite the input")}
	}

	lines, err := readLines(inputPath)
	if err != nil {
		return result, newError(inputPath, err, FileNotFound)
	}

	result.Lines = transcript.Assemble(lines)
	c.logger.Debug(ctx, "Assembled %d transcript lines from %d raw lines: %s", len(result.Lines), len(lines), inputPath)

	if err := c.write(outputPath, inputPath, result.Lines); err != nil {
		return result, newError(outputPath, err, DirectoryNotFound)
	}

	c.logger.Info(ctx, "Transcript saved to %s", outputPath)
	return result, nil
}

func (c *implConverter) write(outputPath, inputPath string, lines []string) error {
	switch c.cfg.Output.Format {
	case config.FormatDocx:
		return writeDocx(outputPath, inputPath, lines, c.cfg.Output.JoinLines)
	default:
		return writeText(outputPath, lines, c.cfg.Output.JoinLines)
	}
}

// ConvertDir converts the .vtt files of inputDir one after another. A file
// that fails is logged and recorded in the report and the batch goes on.
// The returned error covers the directories themselves and cancellation.
func (c *implConverter) ConvertDir(ctx context.Context, inputDir, outputDir string) (*Report, error) {
	startTime := time.Now()
	report := &Report{}

	files, err := discoverSubtitleFiles(inputDir)
	if err != nil {
		return report, err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return report, newError(outputDir, err, DirectoryNotFound)
	}

	if len(files) == 0 {
		c.logger.Info(ctx, "No %s files found in %s", SubtitleExt, inputDir)
		return report, nil
	}

	c.logger.Info(ctx, "Found %d %s files to convert", len(files), SubtitleExt)

	for i, path := range files {
		if err := ctx.Err(); err != nil {
			c.logger.Warn(ctx, "Batch interrupted after %d of %d files", i, len(files))
			return report, err
		}

		c.logger.Info(ctx, "[%d/%d] Converting: %s", i+1, len(files), filepath.Base(path))

		result, err := c.Convert(ctx, path, OutputPath(path, outputDir, c.cfg.Extension()))
		if err != nil {
			c.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			report.Failed = append(report.Failed, asError(path, err))
			continue
		}
		report.Converted = append(report.Converted, result)
	}

	c.logger.Info(ctx, "Batch complete: %d converted, %d failed (%s)",
		len(report.Converted), len(report.Failed), time.Since(startTime).Round(time.Millisecond))
	return report, nil
}

// discoverSubtitleFiles lists the .vtt files directly under dir, sorted by
// name. Hidden files and subdirectories are ignored.
func discoverSubtitleFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, newError(dir, err, DirectoryNotFound)
	}
	if !info.IsDir() {
		return nil, &Error{Kind: DirectoryNotFound, Path: dir, Err: errors.New("not a directory")}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(dir, err, DirectoryNotFound)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if IsSubtitleFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsSubtitleFile reports whether path has the .vtt extension, in any case
func IsSubtitleFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SubtitleExt)
}

func asError(path string, err error) *Error {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr
	}
	return &Error{Kind: IOError, Path: path, Err: fmt.Errorf("convert: %w", err)}
}
