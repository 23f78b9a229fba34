// File: pkg/bundle/manifest.go
package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrNoFiles             = errors.New("manifest has no files key")
	ErrUnsupportedManifest = errors.New("unsupported manifest format")
)

// Manifest is the on-disk form of a Profile. Files is a pointer so that an
// explicit empty list can be told apart from an absent key.
type Manifest struct {
	Title    string    `yaml:"title" toml:"title"`
	Output   string    `yaml:"output" toml:"output"`
	Language string    `yaml:"language" toml:"language"`
	Decoding string    `yaml:"decoding" toml:"decoding"`
	Files    *[]string `yaml:"files" toml:"files"`
}

// LoadManifest reads a YAML (.yaml, .yml) or TOML (.toml) manifest and
// returns the profile it describes. Unset fields take the default profile's values.
func LoadManifest(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return Profile{}, fmt.Errorf("failed to parse YAML manifest %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return Profile{}, fmt.Errorf("failed to parse TOML manifest %s: %w", path, err)
		}
	default:
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedManifest, ext)
	}

	return m.Profile()
}

// Profile merges the manifest over DefaultProfile and validates the result.
func (m Manifest) Profile() (Profile, error) {
	if m.Files == nil {
		return Profile{}, ErrNoFiles
	}

	p := DefaultProfile()
	if m.Title != "" {
		p.Title = m.Title
	}
	if m.Output != "" {
		p.Output = m.Output
	}
	if m.Language != "" {
		p.Language = m.Language
	}
	decoding, err := ParseDecoding(m.Decoding)
	if err != nil {
		return Profile{}, err
	}
	p.Decoding = decoding
	p.Files = append([]string{}, (*m.Files)...)

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}
