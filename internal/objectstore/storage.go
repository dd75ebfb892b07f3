// Package objectstore stores uploaded images and hands out the public
// bucket URLs the API embeds in its records. Objects are written to
// the local filesystem; the URL scheme mirrors an S3-style bucket so
// stored records stay valid if the files are moved behind a CDN.
package objectstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Upload folders. The folder is part of the object name and therefore
// of every stored URL.
const (
	FolderCovers      = "portadas"
	FolderCredentials = "credenciales"
)

// Storage manages uploaded objects on the local filesystem.
// Thread-safe for concurrent operations.
type Storage struct {
	basePath string
	bucket   string
	domain   string
	mu       sync.RWMutex // Protects file operations
}

// New creates a Storage rooted at basePath. Objects become publicly
// addressable as https://{bucket}.{domain}/{objectName}.
func New(basePath, bucket, domain string) (*Storage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}
	if bucket == "" {
		return nil, fmt.Errorf("bucket cannot be empty")
	}
	if domain == "" {
		return nil, fmt.Errorf("domain cannot be empty")
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create objects directory: %w", err)
	}

	return &Storage{
		basePath: basePath,
		bucket:   bucket,
		domain:   domain,
	}, nil
}

// Put stores data under a fresh object name derived from the original
// filename and returns the public URL together with the object name.
// Object name format: {folder}/{uuid}_{filename}.
func (s *Storage) Put(folder, filename string, data []byte) (url, objectName string, err error) {
	if folder == "" {
		return "", "", fmt.Errorf("folder cannot be empty")
	}
	if len(data) == 0 {
		return "", "", fmt.Errorf("object data cannot be empty")
	}

	// Strip any path the client sent along with the filename.
	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		filename = "archivo"
	}

	objectName = fmt.Sprintf("%s/%s_%s", folder, uuid.New().String(), filename)

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(objectName)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", "", fmt.Errorf("failed to create %s directory: %w", folder, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", "", fmt.Errorf("failed to write object: %w", err)
	}

	return s.URL(objectName), objectName, nil
}

// Get retrieves object data by object name.
func (s *Storage) Get(objectName string) ([]byte, error) {
	if objectName == "" {
		return nil, fmt.Errorf("object name cannot be empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(objectName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object not found: %s", objectName)
		}
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// Exists checks whether an object is present.
func (s *Storage) Exists(objectName string) bool {
	if objectName == "" {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := os.Stat(s.path(objectName))
	return err == nil
}

// Delete removes an object. Deleting a missing object is not an
// error, so callers can use it to compensate failed writes.
func (s *Storage) Delete(objectName string) error {
	if objectName == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(objectName)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// URL returns the public URL for an object name.
func (s *Storage) URL(objectName string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.domain, objectName)
}

// path maps an object name to its filesystem location, keeping it
// confined under the base path.
func (s *Storage) path(objectName string) string {
	clean := filepath.Clean(strings.ReplaceAll(objectName, "/", string(filepath.Separator)))
	return filepath.Join(s.basePath, clean)
}
