// SPDX-License-Identifier: MIT

// Package keyfile loads Hill cipher keys from YAML or TOML files.
//
// YAML:
//
//	key:
//	  - [3, 3]
//	  - [2, 5]
//	pad: X
//
// TOML:
//
//	key = [[3, 3], [2, 5]]
//	pad = "X"
//
// A flat list of n² integers may be given instead of rows:
//
//	flat: [3, 3, 2, 5]
package keyfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillcipher/matrix"
)

// Format identifies a key file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var (
	// ErrUnsupportedFormat is returned for an unknown file extension.
	ErrUnsupportedFormat = errors.New("keyfile: unsupported format")
	// ErrNoKey is returned when neither key nor flat is set, or both are.
	ErrNoKey = errors.New("keyfile: exactly one of key or flat must be set")
	// ErrBadPad is returned when pad is not a single character.
	ErrBadPad = errors.New("keyfile: pad must be a single character")
)

// File is the decoded key file.
type File struct {
	Key  [][]int `yaml:"key" toml:"key"`
	Flat []int   `yaml:"flat" toml:"flat"`
	Pad  string  `yaml:"pad" toml:"pad"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads and decodes the key file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	return Parse(data, format)
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("failed to parse key file: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), f); err != nil {
			return nil, fmt.Errorf("failed to parse key file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	return f, nil
}

// Matrix shapes the decoded key into a square matrix.
func (f *File) Matrix() (*matrix.Dense, error) {
	hasRows, hasFlat := len(f.Key) > 0, len(f.Flat) > 0
	switch {
	case hasRows && !hasFlat:
		return matrix.FromSquareRows(f.Key)
	case hasFlat && !hasRows:
		return matrix.FromFlat(f.Flat)
	default:
		return nil, ErrNoKey
	}
}

// PadRune returns the pad character and whether one was set.
func (f *File) PadRune() (rune, bool, error) {
	if f.Pad == "" {
		return 0, false, nil
	}
	if utf8.RuneCountInString(f.Pad) != 1 {
		return 0, false, fmt.Errorf("%q: %w", f.Pad, ErrBadPad)
	}
	r, _ := utf8.DecodeRuneInString(f.Pad)

	return r, true, nil
}
