package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DiskStore keeps objects under Root and serves them at {BaseURL}/uploads/...
// (the router exposes Root as a static dir, so URL and disk layout stay in
// lockstep).
type DiskStore struct {
	Root    string
	BaseURL string
}

func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Upload(ctx context.Context, objectPath string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	data = shrinkImage(data)

	dest := filepath.Join(s.Root, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	return s.publicURL(objectPath), nil
}

func (s *DiskStore) Delete(ctx context.Context, objectPath string) error {
	dest := filepath.Join(s.Root, filepath.FromSlash(objectPath))
	if err := os.Remove(dest); err != nil {
		if os.IsNotExist(err) {
			return ErrObjectNotFound
		}
		return err
	}
	return nil
}

func (s *DiskStore) Exists(ctx context.Context, objectPath string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.Root, filepath.FromSlash(objectPath)))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (s *DiskStore) publicURL(objectPath string) string {
	escaped := make([]string, 0, 4)
	for _, seg := range strings.Split(objectPath, "/") {
		escaped = append(escaped, url.PathEscape(seg))
	}
	return s.BaseURL + "/uploads/" + path.Join(escaped...)
}
