package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ProofStore persists proof-of-payment files and returns the reference
// stored on the payment record.
type ProofStore interface {
	Save(filename string, r io.Reader) (string, error)
}

// LocalProofStore writes proof files to a directory on local disk.
// Each file gets a random prefix so concurrent uploads of identically
// named files never collide. A file whose payment record fails to insert
// is orphaned here; no cleanup runs.
type LocalProofStore struct {
	baseDir string
	urlBase string
}

// NewLocalProofStore creates a LocalProofStore rooted at baseDir.
// urlBase is the path prefix recorded on payments (e.g. "payment-proofs").
func NewLocalProofStore(baseDir, urlBase string) (*LocalProofStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create proof directory %s: %w", baseDir, err)
	}
	return &LocalProofStore{baseDir: baseDir, urlBase: urlBase}, nil
}

// Save writes the file under a unique name and returns its reference path.
func (s *LocalProofStore) Save(filename string, r io.Reader) (string, error) {
	// Strip any client-supplied directory components.
	name := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	fullPath := filepath.Join(s.baseDir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create proof file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write proof file: %w", err)
	}

	return s.urlBase + "/" + name, nil
}
