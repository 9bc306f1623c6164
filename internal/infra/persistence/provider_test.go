package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"adminpanel/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("file store", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Session.Store = config.SessionStoreFile
		cfg.Session.TokenKey = "authToken"
		cfg.Session.FilePath = filepath.Join(t.TempDir(), "session.json")

		repo, closeFn, err := Open(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()

		require.NoError(t, repo.Save(ctx, "tok"))
		token, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, "tok", token)
	})

	t.Run("redis store", func(t *testing.T) {
		server := miniredis.RunT(t)
		cfg := &config.Config{}
		cfg.Session.Store = config.SessionStoreRedis
		cfg.Session.TokenKey = "console:authToken"
		cfg.Session.Redis = &config.RedisConfig{Addr: server.Addr()}

		repo, closeFn, err := Open(ctx, cfg)
		require.NoError(t, err)
		defer closeFn()

		require.NoError(t, repo.Save(ctx, "tok"))
		assert.True(t, server.Exists("console:authToken"))
	})

	t.Run("unknown store", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Session.Store = "etcd"

		_, _, err := Open(ctx, cfg)
		require.Error(t, err)
	})
}
