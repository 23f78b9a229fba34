// File: pkg/bundle/resolve.go
package bundle

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ResolvedFile pairs a configured relative path with its location under the root.
type ResolvedFile struct {
	Rel    string // Path as configured.
	Abs    string // Absolute path under the project root.
	Exists bool   // Whether the path existed when it was resolved.
}

// Resolution splits the configured files into present and missing, both in configured order.
type Resolution struct {
	Present []ResolvedFile
	Missing []ResolvedFile
}

// MissingPaths returns the relative paths of the missing files.
func (r Resolution) MissingPaths() []string {
	paths := make([]string, 0, len(r.Missing))
	for _, f := range r.Missing {
		paths = append(paths, f.Rel)
	}
	return paths
}

// Resolve checks which of files exist under root. A path that cannot be
// stat'ed for any reason is reported missing; it is never an error.
func Resolve(root string, files []string, logger *zap.Logger) Resolution {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Resolution
	for _, rel := range files {
		rf := ResolvedFile{
			Rel: rel,
			Abs: filepath.Join(root, filepath.FromSlash(rel)),
		}
		if _, err := os.Stat(rf.Abs); err != nil {
			logger.Warn("Configured file is missing", zap.String("file", rel), zap.Error(err))
			res.Missing = append(res.Missing, rf)
			continue
		}
		rf.Exists = true
		logger.Debug("Resolved file", zap.String("file", rel), zap.String("path", rf.Abs))
		res.Present = append(res.Present, rf)
	}
	return res
}
