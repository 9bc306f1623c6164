package entity

import "time"

// SessionState is the three-state lifecycle of the operator session.
// Loading is distinct from Unauthenticated so that nothing is decided
// while a persisted credential is still being checked.
type SessionState int

const (
	SessionLoading SessionState = iota
	SessionAuthenticated
	SessionUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// SessionSnapshot is a consistent copy of the session at one instant.
type SessionSnapshot struct {
	State     SessionState
	Token     string
	Profile   *Profile
	ExpiresAt time.Time // zero when the credential carries no exp claim
}

// IsAuthenticated is true only when a profile is present, never on a bare
// credential.
func (s SessionSnapshot) IsAuthenticated() bool {
	return s.Profile != nil
}

// IsLoading reports whether a restore is still in flight.
func (s SessionSnapshot) IsLoading() bool {
	return s.State == SessionLoading
}
