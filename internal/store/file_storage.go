package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"intown-api/internal/models"
)

// FileStorage persists the location record as a single JSON file.
type FileStorage struct {
	path string
}

// NewFileStorage creates a FileStorage writing to the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load reads the persisted record. A missing file is not an error and
// yields nil.
func (f *FileStorage) Load() (*models.LocationDetails, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("storage: failed to read location file: %w", err)
	}

	var loc models.LocationDetails
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("storage: failed to decode location file: %w", err)
	}

	return &loc, nil
}

// Save writes the record, creating parent directories as needed.
func (f *FileStorage) Save(loc models.LocationDetails) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("storage: failed to encode location: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("storage: failed to write location file: %w", err)
	}

	return nil
}

// Clear removes the persisted record. A missing file is not an error.
func (f *FileStorage) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: failed to remove location file: %w", err)
	}
	return nil
}
