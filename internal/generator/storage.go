package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// artifactWriter abstracts where build outputs land so the service can be
// exercised against an in-memory sink in tests.
type artifactWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	RemoveAll(ctx context.Context, path string) error
}

// osWriter writes artifacts beneath a root directory on the local filesystem.
type osWriter struct {
	root string
}

func newOSWriter(root string) (*osWriter, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("generator: output directory is required")
	}
	return &osWriter{root: filepath.Clean(root)}, nil
}

func (w *osWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	target, err := w.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("generator: ensure dir for %s: %w", path, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", path, err)
	}
	return nil
}

func (w *osWriter) RemoveAll(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if strings.TrimSpace(path) == "" || path == "." {
		// Clearing the root removes its contents but keeps the directory.
		entries, err := os.ReadDir(w.root)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("generator: read output dir: %w", err)
		}
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(w.root, entry.Name())); err != nil {
				return fmt.Errorf("generator: remove %s: %w", entry.Name(), err)
			}
		}
		return nil
	}

	target, err := w.resolve(path)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("generator: remove %s: %w", path, err)
	}
	return nil
}

// resolve keeps artifact paths inside the output root; a page route can never
// escape via "..".
func (w *osWriter) resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(strings.TrimSpace(path)))
	if cleaned == "" || cleaned == "." {
		return "", errors.New("generator: artifact path is required")
	}
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", fmt.Errorf("generator: artifact path %q escapes output root", path)
	}
	return filepath.Join(w.root, cleaned), nil
}
