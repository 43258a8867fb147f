// Package mappings reads the user overlay that extends the built-in
// translation tables.
package mappings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/ports"
)

// FileSource decodes overlays from YAML, TOML or JSON files chosen by extension.
type FileSource struct{}

// NewFileSource builds a FileSource.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Load implements ports.MappingSource. A missing file yields an empty overlay.
func (s *FileSource) Load(_ context.Context, path string) (translate.Overlay, error) {
	if path == "" {
		return translate.Overlay{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return translate.Overlay{}, nil
		}
		return translate.Overlay{}, fmt.Errorf("read mappings %s: %w", path, err)
	}
	overlay, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return translate.Overlay{}, fmt.Errorf("mappings %s: %w", path, err)
	}
	return overlay, nil
}

// Decode parses an overlay document and validates it. ext selects the format;
// anything other than .toml or .json is read as YAML.
func Decode(data []byte, ext string) (translate.Overlay, error) {
	var overlay translate.Overlay
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &overlay)
	case ".json":
		err = json.Unmarshal(data, &overlay)
	default:
		err = yaml.Unmarshal(data, &overlay)
	}
	if err != nil {
		return translate.Overlay{}, fmt.Errorf("decode: %v: %w", err, domain.ErrInvalidMapping)
	}
	if err := overlay.Validate(); err != nil {
		return translate.Overlay{}, err
	}
	return overlay, nil
}

var _ ports.MappingSource = (*FileSource)(nil)
