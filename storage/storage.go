package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store persists uploaded document blobs under a customer/insurance-scoped
// path and removes them when the owning document is deleted.
type Store interface {
	Save(ctx context.Context, customerID uint, insuranceID *uint, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// scopedPath builds customer_{id}/[insurance_{id}/]. Saving the same filename
// twice in the same scope overwrites the earlier blob.
func scopedPath(customerID uint, insuranceID *uint) string {
	p := fmt.Sprintf("customer_%d", customerID)
	if insuranceID != nil {
		p = filepath.Join(p, fmt.Sprintf("insurance_%d", *insuranceID))
	}
	return p
}

// LocalStore writes blobs into a directory tree under Root.
type LocalStore struct {
	Root string
}

func NewLocalStore(root string) *LocalStore {
	if root == "" {
		root = "storage"
	}
	return &LocalStore{Root: root}
}

func (s *LocalStore) Save(ctx context.Context, customerID uint, insuranceID *uint, filename string, content io.Reader) (string, error) {
	dir := filepath.Join(s.Root, scopedPath(customerID, insuranceID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, filepath.Base(filename))
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, content); err != nil {
		return "", err
	}
	return path, nil
}

func (s *LocalStore) Remove(ctx context.Context, path string) error {
	return os.Remove(path)
}
