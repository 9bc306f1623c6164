package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "adminpanel/internal/delivery/context"
	"adminpanel/internal/domain/entity"
	"adminpanel/internal/domain/repository"
	"adminpanel/internal/domain/service"
	"adminpanel/internal/usecase"
	"adminpanel/internal/usecase/form"
	"adminpanel/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// SessionServiceParams defines the dependencies of the session service.
type SessionServiceParams struct {
	fx.In

	API         service.AuthAPI
	Holder      service.SessionHolder
	Credentials repository.CredentialRepository
	Tokens      service.TokenInspector
	Validator   service.Validator
	Logger      *slog.Logger
}

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	api         service.AuthAPI
	holder      service.SessionHolder
	credentials repository.CredentialRepository
	tokens      service.TokenInspector
	validator   service.Validator
	logger      *slog.Logger
	now         func() time.Time
	logins      singleflight.Group
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		api:         params.API,
		holder:      params.Holder,
		credentials: params.Credentials,
		tokens:      params.Tokens,
		validator:   params.Validator,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) Restore(ctx context.Context) {
	token, err := srv.credentials.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Warn("Failed to load persisted credential", slog.Any("error", err))
		}
		srv.holder.Clear()

		return
	}

	expiresAt, hasExpiry := srv.tokens.ExpiresAt(token)
	if hasExpiry && !expiresAt.After(srv.now()) {
		srv.log(ctx).Debug("Persisted credential has expired", slog.Time("expires_at", expiresAt))
		srv.Logout(ctx)

		return
	}

	srv.holder.Begin(token, expiresAt)

	profile, err := srv.api.Profile(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// interrupted, not rejected: keep the credential for next time
			srv.log(ctx).Debug("Session restore interrupted", slog.Any("error", err))
			srv.holder.ClearIf(token)

			return
		}

		// a sign-in that completed meanwhile is left alone
		srv.log(ctx).Warn("Persisted credential rejected, signing out", slog.Any("error", err))
		srv.holder.ClearIf(token)
		if _, err := srv.credentials.DeleteIfMatch(ctx, token); err != nil {
			srv.log(ctx).Warn("Failed to delete persisted credential", slog.Any("error", err))
		}

		return
	}

	srv.holder.Authenticate(token, profile, expiresAt)
	srv.log(ctx).Info("Session restored",
		slog.String("operator_id", profile.ID.Hex()),
		slog.String("role", profile.Role.String()),
	)
}

func (srv *sessionService) Login(ctx context.Context, input form.Login) (*entity.Profile, error) {
	input.Normalize()
	if err := srv.validator.Validate(&input); err != nil {
		return nil, err
	}

	phone := input.Phone()
	key, err := util.Fingerprint(input)
	if err != nil {
		return nil, err
	}

	result, err, shared := srv.logins.Do(key, func() (any, error) {
		return srv.api.Login(ctx, phone, input.Password)
	})
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.Any("error", err))

		return nil, err
	}
	if shared {
		srv.log(ctx).Debug("Duplicate login submission collapsed")
	}

	login := result.(*service.LoginResult)
	expiresAt, _ := srv.tokens.ExpiresAt(login.Token)

	// the new credential is only installed once the profile is known, so a
	// failure here leaves any current session as it was
	profile := login.Profile
	if profile == nil {
		profile, err = srv.api.Profile(deliverycontext.WithCredential(ctx, login.Token))
		if err != nil {
			return nil, errors.Wrap(err, "failed to load profile after login")
		}
	}

	srv.holder.Authenticate(login.Token, profile, expiresAt)

	if err := srv.credentials.Save(ctx, login.Token); err != nil {
		srv.log(ctx).Error("Failed to persist credential", slog.Any("error", err))
	}

	srv.log(ctx).Info("Operator signed in",
		slog.String("operator_id", profile.ID.Hex()),
		slog.String("role", profile.Role.String()),
	)

	return profile, nil
}

func (srv *sessionService) Logout(ctx context.Context) {
	srv.holder.Clear()

	if err := srv.credentials.Delete(ctx); err != nil {
		srv.log(ctx).Warn("Failed to delete persisted credential", slog.Any("error", err))
	}
}

func (srv *sessionService) ChangePassword(ctx context.Context, input form.ChangePassword) error {
	if err := srv.validator.Validate(&input); err != nil {
		return err
	}

	if err := srv.api.ChangePassword(ctx, input.CurrentPassword, input.NewPassword); err != nil {
		srv.log(ctx).Info("Password change rejected", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password changed")

	return nil
}

func (srv *sessionService) HandleUnauthorized(ctx context.Context, rejectedToken string) {
	if !srv.holder.ClearIf(rejectedToken) {
		srv.log(ctx).Debug("Ignoring rejection of a credential that is no longer current")

		return
	}

	srv.log(ctx).Info("Credential rejected by the API, signing out")

	if _, err := srv.credentials.DeleteIfMatch(ctx, rejectedToken); err != nil {
		srv.log(ctx).Warn("Failed to delete persisted credential", slog.Any("error", err))
	}
}

func (srv *sessionService) Current() entity.SessionSnapshot {
	return srv.holder.Snapshot()
}
