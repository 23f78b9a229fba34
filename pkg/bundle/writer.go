// File: pkg/bundle/writer.go
package bundle

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Write concatenates fragments into outputPath, replacing any existing file,
// and returns the absolute path written.
func Write(outputPath string, fragments []string, logger *zap.Logger) (written string, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}
	logger.Debug("Writing bundle to output file", zap.String("outputFile", absPath), zap.Int("fragments", len(fragments)))

	outFile, err := os.Create(absPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", absPath), zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("failed to close output file: %w", closeErr))
			written = ""
		}
	}()

	writer := bufio.NewWriter(outFile)
	for _, fragment := range fragments {
		if _, err := writer.WriteString(fragment); err != nil {
			logger.Error("Failed to write bundle fragment", zap.String("file", absPath), zap.Error(err))
			return "", fmt.Errorf("failed to write content: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", absPath), zap.Error(err))
		return "", fmt.Errorf("failed to flush output: %w", err)
	}

	return absPath, nil
}
