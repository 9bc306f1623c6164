// Package persistence selects the credential store configured for the
// session and manages its connection.
package persistence

import (
	"context"
	"log/slog"

	"adminpanel/config"
	"adminpanel/internal/domain/lifecycle"
	"adminpanel/internal/domain/repository"
	"adminpanel/internal/infra/persistence/file"
	redisstore "adminpanel/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Open builds the configured credential repository. The returned close
// function releases any connection and is never nil.
func Open(ctx context.Context, cfg *config.Config) (repository.CredentialRepository, func() error, error) {
	switch cfg.Session.Store {
	case config.SessionStoreFile, "":
		return file.NewCredentialRepository(cfg.Session.FilePath, cfg.Session.TokenKey), func() error { return nil }, nil
	case config.SessionStoreRedis:
		client, err := redisstore.NewClient(ctx, cfg.Session.Redis)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to connect session redis")
		}

		return redisstore.NewCredentialRepository(client, cfg.Session.TokenKey), client.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown session store: %s", cfg.Session.Store)
	}
}

// NewCredentialRepository provides the credential repository to the fx graph.
func NewCredentialRepository(params Params) (repository.CredentialRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	repo, closeFn, err := Open(ctx, params.Config)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Credential store ready",
		slog.String("store", params.Config.Session.Store),
		slog.String("key", params.Config.Session.TokenKey),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeFn()
		},
	})

	return repo, nil
}
