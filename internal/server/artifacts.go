package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/Evgya/anime-analysis/pkg/errors"
)

// artifactStore persists rendered charts under a directory with unique,
// date-prefixed filenames.
type artifactStore struct {
	dir string
}

// Save writes data to a fresh artifact file and returns its basename.
func (a *artifactStore) Save(kind, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact dir: %w", err)
	}

	filename := fmt.Sprintf("%s-%s-%s.%s", time.Now().Format("20060102"), kind, uuid.New().String(), ext)
	if err := os.WriteFile(filepath.Join(a.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact: %w", err)
	}
	return filename, nil
}

// Open returns the path of a stored artifact after validating the name.
func (a *artifactStore) Open(filename string) (string, error) {
	if err := apperrors.ValidateArtifactFilename(filename); err != nil {
		return "", err
	}

	path := filepath.Join(a.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.New(apperrors.ErrCodeFileNotFound, "no such artifact: %s", filename)
	}
	return path, nil
}
