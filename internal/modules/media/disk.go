package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type diskStorage struct {
	dir     string
	baseURL string
}

// NewDiskStorage creates an object store on the local filesystem, served at
// baseURL/uploads/.
func NewDiskStorage(dir, baseURL string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &diskStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *diskStorage) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(filename))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.baseURL + "/uploads/" + name, nil
}

// sanitize strips any path component and whitespace from a client-supplied
// filename.
func sanitize(filename string) string {
	name := filepath.Base(filename)
	return strings.ReplaceAll(name, " ", "-")
}

type placeholderStorage struct{}

// NewPlaceholderStorage creates the demo-mode storage: uploads are not
// persisted and a fixed placeholder URL is returned.
func NewPlaceholderStorage() Storage { return placeholderStorage{} }

func (placeholderStorage) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	return PlaceholderURL, nil
}
