// Package session holds the in-memory operator session shared by the API
// client (which reads the credential) and the session use case (which
// drives its lifecycle).
package session

import (
	"context"
	"sync"
	"time"

	"adminpanel/internal/domain/entity"
)

// Holder is the single piece of shared mutable state in the process. It
// starts in the loading state; waiters block on settled until the state
// leaves loading.
type Holder struct {
	mu        sync.RWMutex
	state     entity.SessionState
	token     string
	profile   *entity.Profile
	expiresAt time.Time
	settled   chan struct{}
}

// NewHolder returns a Holder in the loading state.
func NewHolder() *Holder {
	return &Holder{
		state:   entity.SessionLoading,
		settled: make(chan struct{}),
	}
}

// Token returns the current credential, "" when there is none.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}

// Snapshot returns a consistent copy of the session.
func (h *Holder) Snapshot() entity.SessionSnapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.snapshotLocked()
}

// Wait blocks until the session is no longer loading.
func (h *Holder) Wait(ctx context.Context) (entity.SessionSnapshot, error) {
	for {
		h.mu.RLock()
		if h.state != entity.SessionLoading {
			snap := h.snapshotLocked()
			h.mu.RUnlock()

			return snap, nil
		}
		settled := h.settled
		h.mu.RUnlock()

		select {
		case <-settled:
		case <-ctx.Done():
			return h.Snapshot(), ctx.Err()
		}
	}
}

// Begin installs a credential that still has to be confirmed by a profile
// fetch and moves the session into loading.
func (h *Holder) Begin(token string, expiresAt time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.enterLoadingLocked()
	h.token = token
	h.profile = nil
	h.expiresAt = expiresAt
}

// Authenticate stores a confirmed credential and profile.
func (h *Holder) Authenticate(token string, profile *entity.Profile, expiresAt time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = token
	h.profile = profile
	h.expiresAt = expiresAt
	h.settleLocked(entity.SessionAuthenticated)
}

// Clear drops credential and profile.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""
	h.profile = nil
	h.expiresAt = time.Time{}
	h.settleLocked(entity.SessionUnauthenticated)
}

// ClearIf clears the session only if token is still the installed
// credential. A rejection of an older credential leaves a newer session alone.
func (h *Holder) ClearIf(token string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if token == "" || h.token != token {
		return false
	}

	h.token = ""
	h.profile = nil
	h.expiresAt = time.Time{}
	h.settleLocked(entity.SessionUnauthenticated)

	return true
}

func (h *Holder) snapshotLocked() entity.SessionSnapshot {
	var profile *entity.Profile
	if h.profile != nil {
		p := *h.profile
		profile = &p
	}

	return entity.SessionSnapshot{
		State:     h.state,
		Token:     h.token,
		Profile:   profile,
		ExpiresAt: h.expiresAt,
	}
}

func (h *Holder) enterLoadingLocked() {
	if h.state == entity.SessionLoading {
		return
	}
	h.state = entity.SessionLoading
	h.settled = make(chan struct{})
}

func (h *Holder) settleLocked(state entity.SessionState) {
	wasLoading := h.state == entity.SessionLoading
	h.state = state
	if wasLoading {
		close(h.settled)
	}
}
