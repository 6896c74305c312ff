// Package load reads type definitions from the JSON intermediate
// representation or from the YAML definition format.
package load

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/syssam/conjen/schema"
)

// Format is a definition file format.
type Format uint8

// Supported formats.
const (
	FormatUnknown Format = iota
	FormatIR
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatIR:
		return "ir"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf returns the format implied by a file extension: .json files are
// IR, .yml and .yaml files are YAML.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatIR
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatUnknown
	}
}

// Parse decodes data in the given format.
func Parse(data []byte, format Format) ([]schema.TypeDefinition, error) {
	switch format {
	case FormatIR:
		return ParseIR(data)
	case FormatYAML:
		return ParseYAML(data)
	default:
		return nil, errors.Newf("unsupported format %s", format)
	}
}

// Load reads definitions from path. A directory is loaded as every
// definition file directly inside it, in name order.
func Load(path string) ([]schema.TypeDefinition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	if !info.IsDir() {
		return loadFile(path)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && FormatOf(e.Name()) != FormatUnknown {
			files = append(files, filepath.Join(path, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, errors.WithHint(
			errors.Newf("load %s: no definition files", path),
			"definition files end in .json, .yml or .yaml",
		)
	}
	return LoadFiles(files...)
}

// LoadFiles reads and concatenates the definitions of several files.
func LoadFiles(paths ...string) ([]schema.TypeDefinition, error) {
	paths = slices.Clone(paths)
	slices.Sort(paths)
	var defs []schema.TypeDefinition
	for _, p := range paths {
		d, err := loadFile(p)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d...)
	}
	return defs, nil
}

func loadFile(path string) ([]schema.TypeDefinition, error) {
	format := FormatOf(path)
	if format == FormatUnknown {
		return nil, errors.WithHint(
			errors.Newf("load %s: unknown file format", path),
			"use a .json IR file or a .yml/.yaml definition file",
		)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	defs, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return defs, nil
}
