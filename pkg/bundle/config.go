// File: pkg/bundle/config.go
package bundle

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Decoding selects how file bytes that are not valid UTF-8 are handled.
type Decoding string

const (
	// DecodeReplace substitutes U+FFFD for every undecodable byte.
	DecodeReplace Decoding = "replace"
	// DecodeStrict fails the run on the first file with invalid UTF-8.
	DecodeStrict Decoding = "strict"
)

var (
	ErrUnknownDecoding = errors.New("unknown decoding mode")
	ErrInvalidOutput   = errors.New("output must be a relative path inside the project root")
)

// ParseDecoding maps a configuration string onto a Decoding mode.
// The empty string selects DecodeReplace.
func ParseDecoding(s string) (Decoding, error) {
	switch Decoding(strings.ToLower(strings.TrimSpace(s))) {
	case "", DecodeReplace:
		return DecodeReplace, nil
	case DecodeStrict:
		return DecodeStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDecoding, s)
	}
}

// Profile is the static configuration of one bundle.
type Profile struct {
	Title    string   // Heading written at the top of the document.
	Output   string   // Output filename, relative to the project root.
	Language string   // Language tag on every code fence.
	Decoding Decoding // Policy for undecodable bytes.
	Files    []string // Slash-separated paths relative to the project root, in section order.
}

// authFiles is the auth feature area of the Flutter app the tool was first written for.
var authFiles = []string{
	"lib/main.dart",
	"lib/firebase_options.dart",
	"lib/features/auth/auth_gate.dart",
	"lib/features/auth/auth_side_effects.dart",
	"lib/features/auth/providers.dart",
	"lib/features/auth/auth_state.dart",
	"lib/features/auth/sign_in_page.dart",
	"lib/features/saves/guest_migration.dart",
	"lib/data/aft_repository.dart",
	"lib/data/aft_repository_local.dart",
	"lib/data/repository_providers.dart",
}

// DefaultProfile returns a fresh copy of the built-in auth bundle profile.
func DefaultProfile() Profile {
	return Profile{
		Title:    "Auth bundle",
		Output:   "auth_bundle.md",
		Language: "dart",
		Decoding: DecodeReplace,
		Files:    append([]string(nil), authFiles...),
	}
}

// Validate checks the profile fields that can be wrong independently of the filesystem.
func (p Profile) Validate() error {
	if _, err := ParseDecoding(string(p.Decoding)); err != nil {
		return err
	}
	return validateOutput(p.Output)
}

func validateOutput(out string) error {
	if strings.TrimSpace(out) == "" || filepath.IsAbs(out) || filepath.VolumeName(out) != "" {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, out)
	}
	rel := filepath.Clean(filepath.FromSlash(out))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q", ErrInvalidOutput, out)
	}
	return nil
}

// Options holds everything one invocation of Run needs.
type Options struct {
	Root    string           // Project root; resolved to an absolute path. Empty means the working directory.
	Profile Profile          // Bundle definition.
	Now     func() time.Time // Clock for the Generated line; defaults to time.Now.
}
