// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no credential has been persisted.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository persists the bearer credential under a single named
// key so a restart can restore the session without logging in again.
type CredentialRepository interface {
	// Load returns the persisted credential or ErrCredentialNotFound.
	Load(ctx context.Context) (string, error)

	// Save replaces the persisted credential.
	Save(ctx context.Context, token string) error

	// Delete removes the persisted credential. Deleting a missing one is not an error.
	Delete(ctx context.Context) error

	// DeleteIfMatch removes the persisted credential only while it still
	// equals token, and reports whether it did.
	DeleteIfMatch(ctx context.Context, token string) (bool, error)
}
