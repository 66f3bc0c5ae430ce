package job

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a job file encoding.
type Format int

const (
	// FormatYAML is gopkg.in/yaml.v3.
	FormatYAML Format = iota
	// FormatTOML is github.com/BurntSushi/toml.
	FormatTOML
)

// String returns "yaml" or "toml".
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// DetectFormat maps a file extension to a Format.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}

// Load reads and validates the job file at path.
func Load(path string) (*Job, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read %q: %w", path, err)
	}
	j, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}

	return j, nil
}

// Parse decodes and validates a job. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Job, error) {
	var j Job
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&j); err != nil {
			return nil, fmt.Errorf("job: yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &j)
		if err != nil {
			return nil, fmt.Errorf("job: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("job: toml: unknown key %q: %w", undecoded[0].String(), ErrInvalidJob)
		}
	default:
		return nil, fmt.Errorf("job: format %d: %w", format, ErrUnknownFormat)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}

	return &j, nil
}
