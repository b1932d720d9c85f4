package filestore

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store is the blob store for uploaded machine images, component images,
// category images and drawing files. Paths are relative to the public
// root and are what gets persisted on the owning row.
type Store interface {
	Save(dir, originalName string, data []byte) (string, error)
	Delete(relPath string) error
	Root() string
}

type LocalStore struct {
	root string
}

// NewLocalStore serves blobs from a public directory on local disk,
// mirroring a classic "public disk" layout (machines/, components/,
// drawings/, categories/ subdirectories).
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Root() string {
	return s.root
}

// Save writes data under dir with a random filename that keeps the
// original extension, and returns the relative path to persist.
func (s *LocalStore) Save(dir, originalName string, data []byte) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	relPath := path.Join(dir, hex.EncodeToString(buf)+ext)

	absPath := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(absPath, data, 0o644); err != nil {
		return "", err
	}

	return relPath, nil
}

// Delete removes a stored blob. Missing files are not an error: deletion
// is best-effort and may race with a previous partial cleanup.
func (s *LocalStore) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	// Refuse paths escaping the root.
	clean := path.Clean(relPath)
	if strings.HasPrefix(clean, "..") {
		return fmt.Errorf("filestore: invalid path %q", relPath)
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(clean)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
