package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store keeps payment proof images on local disk and hands back an opaque
// reference. Swapping in object storage later only needs another
// implementation of the order service's ImageStore contract.
type Store struct {
	baseDir string
}

func New(baseDir string) (*Store, error) {
	err := os.MkdirAll(filepath.Join(baseDir, "proofs"), 0o750)
	if err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &Store{baseDir: baseDir}, nil
}

func (s *Store) Store(_ context.Context, orderID int64, filename string, content io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}

	reference := filepath.Join("proofs", fmt.Sprintf("%d-%d%s", orderID, time.Now().UnixNano(), ext))

	file, err := os.Create(filepath.Join(s.baseDir, reference))
	if err != nil {
		return "", fmt.Errorf("create proof file: %w", err)
	}

	_, err = io.Copy(file, content)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(filepath.Join(s.baseDir, reference))
		return "", fmt.Errorf("write proof file: %w", err)
	}

	err = file.Close()
	if err != nil {
		return "", fmt.Errorf("close proof file: %w", err)
	}

	return reference, nil
}

// Remove discards a previously stored proof. A missing file is not an error,
// so replacing a proof whose file is already gone still succeeds.
func (s *Store) Remove(_ context.Context, reference string) error {
	if reference == "" || strings.Contains(reference, "..") {
		return fmt.Errorf("invalid proof reference %q", reference)
	}

	err := os.Remove(filepath.Join(s.baseDir, reference))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove proof file: %w", err)
	}
	return nil
}
