// Package adapter contains the infrastructure adapters of the argue CLI:
// framework files, the worked-example catalog and the report store.
package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "argue.dev/pkg/argue/internal/model"
	"gopkg.in/yaml.v3"
)

// MaxFrameworkFileSize bounds the framework files the source will read.
const MaxFrameworkFileSize = 4 << 20

// FrameworkSource reads framework descriptions from disk.
type FrameworkSource interface {
	// Load reads every framework in the file at path. A file may hold several
	// YAML documents; JSON files parse as a single document.
	Load(path m.Path) ([]m.FrameworkSpec, error)
}

// LocalFrameworkSource reads framework files from the local filesystem.
type LocalFrameworkSource struct{}

// NewLocalFrameworkSource constructs a LocalFrameworkSource.
func NewLocalFrameworkSource() *LocalFrameworkSource {
	return &LocalFrameworkSource{}
}

// Load implements FrameworkSource. Documents without a name are named after
// the file, suffixed with their position when the file holds several.
func (s *LocalFrameworkSource) Load(path m.Path) ([]m.FrameworkSpec, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		return nil, fmt.Errorf("stat framework file: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("framework path %s is a directory", path)
	}

	if info.Size() > MaxFrameworkFileSize {
		return nil, fmt.Errorf("framework file too large: %d bytes (max %d)", info.Size(), MaxFrameworkFileSize)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read framework file: %w", err)
	}

	specs, err := decodeSpecs(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(specs) == 0 {
		return nil, fmt.Errorf("parse %s: no framework found", path)
	}

	base := strings.TrimSuffix(filepath.Base(string(path)), filepath.Ext(string(path)))

	for i := range specs {
		if specs[i].Name != "" {
			continue
		}

		specs[i].Name = base
		if len(specs) > 1 {
			specs[i].Name = fmt.Sprintf("%s#%d", base, i+1)
		}
	}

	slog.Debug("loaded framework file", "path", path, "frameworks", len(specs))

	return specs, nil
}

func decodeSpecs(data []byte) ([]m.FrameworkSpec, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var specs []m.FrameworkSpec

	for {
		var spec m.FrameworkSpec

		err := decoder.Decode(&spec)
		if errors.Is(err, io.EOF) {
			return specs, nil
		}

		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)
	}
}
