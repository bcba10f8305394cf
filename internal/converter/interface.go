package converter

import "context"

// Converter turns WebVTT files into transcript files
type Converter interface {
	// ConvertFile writes the transcript next to inputPath, swapping its extension
	ConvertFile(ctx context.Context, inputPath string) (Result, error)
	// Convert writes the transcript of inputPath to outputPath
	Convert(ctx context.Context, inputPath, outputPath string) (Result, error)
	// ConvertDir converts every .vtt file of inputDir into outputDir.
	// Per-file failures are collected in the Report, not returned.
	ConvertDir(ctx context.Context, inputDir, outputDir string) (*Report, error)
}

// Result describes one converted file
type Result struct {
	InputPath  string
	OutputPath string
	Lines      []string
}
