// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"adminpanel/internal/domain/entity"
	"adminpanel/internal/usecase/form"
)

// SessionUsecase drives the operator session: restore at start-up, sign in,
// sign out and teardown on authorization failures.
type SessionUsecase interface {
	// Restore loads the persisted credential and confirms it with a profile
	// fetch. Failures end unauthenticated and are only logged.
	Restore(ctx context.Context)

	// Login validates the form locally, then signs in and persists the
	// credential. A failed login leaves the session untouched.
	Login(ctx context.Context, input form.Login) (*entity.Profile, error)

	// Logout clears the session and the persisted credential. It never fails.
	Logout(ctx context.Context)

	// ChangePassword changes the signed-in operator's password.
	ChangePassword(ctx context.Context, input form.ChangePassword) error

	// HandleUnauthorized is subscribed to the API client's 401 event. Only a
	// rejection of the current credential ends the session.
	HandleUnauthorized(ctx context.Context, rejectedToken string)

	// Current returns the session as it is now.
	Current() entity.SessionSnapshot
}
