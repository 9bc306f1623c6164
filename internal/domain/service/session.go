package service

import (
	"context"
	"time"

	"adminpanel/internal/domain/entity"
)

// TokenSource yields the current bearer credential, "" when there is none.
type TokenSource interface {
	Token() string
}

// SessionReader gives read access to the operator session.
type SessionReader interface {
	TokenSource

	// Snapshot returns the session as it is right now, loading or not.
	Snapshot() entity.SessionSnapshot

	// Wait blocks until the session has left the loading state or ctx is done.
	Wait(ctx context.Context) (entity.SessionSnapshot, error)
}

// TokenInspector reads claims from a credential without verifying it. The
// API remains the authority; this only spares a doomed profile request.
type TokenInspector interface {
	// ExpiresAt returns the exp claim, ok=false when absent or unreadable.
	ExpiresAt(token string) (expiresAt time.Time, ok bool)
}

// SessionHolder is the writable side of the session. Only the session use
// case drives these transitions.
type SessionHolder interface {
	SessionReader

	// Begin installs an unconfirmed credential and enters loading.
	Begin(token string, expiresAt time.Time)

	// Authenticate stores a confirmed credential and profile.
	Authenticate(token string, profile *entity.Profile, expiresAt time.Time)

	// Clear drops everything and settles as unauthenticated.
	Clear()

	// ClearIf clears only while token is still the installed credential and
	// reports whether it did.
	ClearIf(token string) bool
}
