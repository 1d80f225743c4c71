package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/zeebo/blake3"
)

// Names are the artifact file names inside the output directory.
type Names struct {
	JSON     string
	CSSLight string
	CSSDark  string
}

// DefaultNames returns the standard artifact file names.
func DefaultNames() Names {
	return Names{
		JSON:     "semantic-colors.json",
		CSSLight: "fleet-light.css",
		CSSDark:  "fleet-dark.css",
	}
}

// WriteResult reports what happened to one artifact.
type WriteResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Bytes   int    `json:"bytes"`
}

// Writer persists artifacts, leaving files with identical content untouched.
type Writer struct {
	dir    string
	names  Names
	logger zerolog.Logger
}

// NewWriter creates a Writer rooted at dir. Empty names use defaults.
func NewWriter(dir string, names Names, logger zerolog.Logger) *Writer {
	defaults := DefaultNames()
	if names.JSON == "" {
		names.JSON = defaults.JSON
	}
	if names.CSSLight == "" {
		names.CSSLight = defaults.CSSLight
	}
	if names.CSSDark == "" {
		names.CSSDark = defaults.CSSDark
	}
	return &Writer{dir: dir, names: names, logger: logger}
}

// Write stores all three artifacts.
func (w *Writer) Write(artifacts Artifacts) ([]WriteResult, error) {
	if w.dir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", w.dir, err)
	}

	files := []struct {
		name    string
		content string
	}{
		{w.names.JSON, artifacts.JSON},
		{w.names.CSSLight, artifacts.CSSLight},
		{w.names.CSSDark, artifacts.CSSDark},
	}

	results := make([]WriteResult, 0, len(files))
	for _, file := range files {
		path := filepath.Join(w.dir, file.name)
		changed, err := writeIfChanged(path, []byte(file.content))
		if err != nil {
			return results, err
		}
		w.logger.Debug().
			Str("path", path).
			Bool("changed", changed).
			Int("bytes", len(file.content)).
			Msg("artifact written")
		results = append(results, WriteResult{Path: path, Changed: changed, Bytes: len(file.content)})
	}
	return results, nil
}

func writeIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if digest(existing) == digest(content) {
			return false, nil
		}
	case !os.IsNotExist(err):
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return false, fmt.Errorf("create temp for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := bytes.NewReader(content).WriteTo(tmp); err != nil {
		tmp.Close()
		return false, fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return false, fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return false, fmt.Errorf("rename %s: %w", path, err)
	}
	return true, nil
}

func digest(data []byte) [32]byte {
	return blake3.Sum256(data)
}
