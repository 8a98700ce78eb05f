package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps attachments on the local filesystem and serves them
// through a static file route.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates the attachment directory if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload writes the blob under a collision-free name derived from path.
func (s *LocalStore) Upload(ctx context.Context, path string, data []byte) (string, error) {
	// Only the base name is kept; callers may pass full client paths.
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		name = "attachment"
	}
	ref := uuid.NewString() + "_" + name

	if err := os.WriteFile(filepath.Join(s.dir, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return ref, nil
}

// URLFor resolves the ref to its public download URL.
func (s *LocalStore) URLFor(ref string) string {
	return s.baseURL + "/" + ref
}

// Dir returns the directory served by the static file route.
func (s *LocalStore) Dir() string {
	return s.dir
}
