// Package bundle collects a fixed, ordered list of project files into one
// line-numbered Markdown document.
//
// A run resolves the configured paths against the project root, reads and
// annotates every file that exists, assembles the document and writes it to
// the profile's output file. All reads finish before the single write.
package bundle

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Result describes a completed run.
type Result struct {
	OutputPath string   // Absolute path of the written bundle.
	Present    []string // Files bundled, in configured order.
	Missing    []string // Files reported missing, in configured order.
}

// Run executes the bundle pipeline once.
func Run(ctx context.Context, opts Options, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	profile := opts.Profile
	profile.Files = append([]string(nil), profile.Files...)
	if err := profile.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid bundle profile: %w", err)
	}
	profile.Decoding, _ = ParseDecoding(string(profile.Decoding))

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		logger.Error("Failed to resolve project root", zap.String("root", opts.Root), zap.Error(err))
		return Result{}, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Info("Starting bundle", zap.String("root", root), zap.String("title", profile.Title), zap.Int("files", len(profile.Files)))

	res := Resolve(root, profile.Files, logger)

	sections := make([]Section, 0, len(res.Present))
	for _, f := range res.Present {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		text, err := Load(f.Abs, profile.Decoding, logger)
		if err != nil {
			return Result{}, err
		}
		sections = append(sections, Section{Rel: f.Rel, Annotated: Annotate(text)})
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	fragments := Assemble(Header{
		Title:       profile.Title,
		Language:    profile.Language,
		Root:        root,
		GeneratedAt: now(),
	}, res.MissingPaths(), sections)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	outputPath, err := Write(filepath.Join(root, filepath.FromSlash(profile.Output)), fragments, logger)
	if err != nil {
		return Result{}, err
	}

	result := Result{OutputPath: outputPath, Missing: res.MissingPaths()}
	for _, s := range sections {
		result.Present = append(result.Present, s.Rel)
	}
	logger.Info("Bundle written",
		zap.String("outputFile", outputPath),
		zap.Int("bundledFiles", len(result.Present)),
		zap.Int("missingFiles", len(result.Missing)),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return result, nil
}
