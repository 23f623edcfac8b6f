package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"swatch/internal/scale"
)

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var ErrUnsupportedFormat = errors.New("unsupported preset format")

// Preset is a shareable colour scale: configuration plus value order.
type Preset struct {
	Name      string       `json:"name" toml:"name" yaml:"name"`
	Attribute string       `json:"attribute" toml:"attribute" yaml:"attribute"`
	Config    scale.Config `json:"config" toml:"config" yaml:"config"`
	Values    []string     `json:"values" toml:"values" yaml:"values"`
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func Encode(w io.Writer, preset Preset, format Format) error {
	preset.Config = preset.Config.Normalized()

	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(preset); err != nil {
			return fmt.Errorf("encode toml preset: %w", err)
		}
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(preset); err != nil {
			return fmt.Errorf("encode yaml preset: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("flush yaml preset: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

func Decode(r io.Reader, format Format) (Preset, error) {
	preset := Preset{Config: scale.DefaultConfig()}

	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).Decode(&preset); err != nil {
			return Preset{}, fmt.Errorf("decode toml preset: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&preset); err != nil && !errors.Is(err, io.EOF) {
			return Preset{}, fmt.Errorf("decode yaml preset: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	preset.Config = preset.Config.Normalized()
	if preset.Values == nil {
		preset.Values = []string{}
	}

	return preset, nil
}

func SaveFile(path string, preset Preset) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var buffer bytes.Buffer
	if err := Encode(&buffer, preset, format); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create preset directory: %w", err)
	}
	if err := os.WriteFile(path, buffer.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write preset %s: %w", path, err)
	}

	return nil
}

func LoadFile(path string) (Preset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Preset{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("open preset: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}
