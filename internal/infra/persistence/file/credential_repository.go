// Package file persists the bearer credential in a small JSON document on
// local disk, the process-level equivalent of browser storage.
package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"adminpanel/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// credentialRepository stores the credential under key inside a JSON object,
// leaving any other keys in the file untouched.
type credentialRepository struct {
	mu   sync.Mutex
	path string
	key  string
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(path, key string) repository.CredentialRepository {
	return &credentialRepository{path: path, key: key}
}

// Load returns the persisted credential.
func (repo *credentialRepository) Load(_ context.Context) (string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	doc, err := repo.read()
	if err != nil {
		return "", err
	}

	token, ok := doc[repo.key]
	if !ok || token == "" {
		return "", repository.ErrCredentialNotFound
	}

	return token, nil
}

// Save replaces the persisted credential.
func (repo *credentialRepository) Save(_ context.Context, token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	doc, err := repo.read()
	if err != nil {
		return err
	}
	doc[repo.key] = token

	return repo.write(doc)
}

// Delete removes the persisted credential.
func (repo *credentialRepository) Delete(_ context.Context) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	doc, err := repo.read()
	if err != nil {
		return err
	}
	if _, ok := doc[repo.key]; !ok {
		return nil
	}
	delete(doc, repo.key)

	return repo.write(doc)
}

// DeleteIfMatch removes the persisted credential if it is still token.
func (repo *credentialRepository) DeleteIfMatch(_ context.Context, token string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	doc, err := repo.read()
	if err != nil {
		return false, err
	}
	if stored, ok := doc[repo.key]; !ok || stored != token {
		return false, nil
	}
	delete(doc, repo.key)

	return true, repo.write(doc)
}

func (repo *credentialRepository) read() (map[string]string, error) {
	raw, err := os.ReadFile(repo.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read credential file")
	}
	if len(raw) == 0 {
		return map[string]string{}, nil
	}

	doc := map[string]string{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "malformed credential file %s", repo.path)
	}

	return doc, nil
}

// write replaces the file atomically via a temp file in the same directory.
func (repo *credentialRepository) write(doc map[string]string) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode credential file")
	}

	dir := filepath.Dir(repo.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrap(err, "failed to create credential directory")
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return errors.Wrap(err, "failed to create temp credential file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to write credential file")
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()

		return errors.Wrap(err, "failed to chmod credential file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close credential file")
	}

	if err := os.Rename(tmpName, repo.path); err != nil {
		return errors.Wrap(err, "failed to replace credential file")
	}

	return nil
}
