// File: pkg/bundle/loader.go
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrInvalidEncoding is returned in strict mode for content that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

// sniffSize is how much of a file looksBinary inspects.
const sniffSize = 512

// Load reads the whole file at path and decodes it as UTF-8 under mode.
func Load(path string, mode Decoding, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	logger.Debug("Read file content", zap.String("filePath", path), zap.Int("contentSizeBytes", len(raw)))

	if looksBinary(raw) {
		logger.Warn("File looks binary; bundling it as text anyway", zap.String("filePath", path))
	}

	text, err := Decode(raw, mode)
	if err != nil {
		logger.Error("Failed to decode file", zap.String("filePath", path), zap.Error(err))
		return "", fmt.Errorf("error decoding file %s: %w", path, err)
	}
	return text, nil
}

// Decode converts raw bytes to text. In DecodeReplace mode every byte that
// does not start a valid UTF-8 sequence becomes U+FFFD.
func Decode(raw []byte, mode Decoding) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	switch mode {
	case DecodeStrict:
		return "", ErrInvalidEncoding
	case DecodeReplace, "":
		out, _, err := transform.Bytes(unicode.UTF8.NewDecoder(), raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDecoding, mode)
	}
}

// looksBinary reports whether the head of raw has NUL bytes or is more than
// 30% non-printable.
func looksBinary(raw []byte) bool {
	head := raw
	if len(head) > sniffSize {
		head = head[:sniffSize]
	}
	if len(head) == 0 {
		return false
	}
	if bytes.IndexByte(head, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range head {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(head)) > 0.3
}

// isPrintable treats ASCII text, common whitespace and UTF-8 continuation/lead bytes as printable.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 0x80
}
