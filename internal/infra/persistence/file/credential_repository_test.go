package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"adminpanel/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	repo := NewCredentialRepository(path, "authToken")

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, repo.Save(ctx, "first"))
	require.NoError(t, repo.Save(ctx, "second"))

	token, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(filePerm), info.Mode().Perm())

	// A fresh repository on the same file sees the credential, as after a restart.
	reopened := NewCredentialRepository(path, "authToken")
	token, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, repo.Delete(ctx))
	_, err = reopened.Load(ctx)
	require.ErrorIs(t, err, repository.ErrCredentialNotFound)

	require.NoError(t, repo.Delete(ctx))
}

func TestCredentialRepository_KeepsOtherKeys(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))

	repo := NewCredentialRepository(path, "authToken")
	require.NoError(t, repo.Save(ctx, "tok"))
	require.NoError(t, repo.Delete(ctx))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(raw))
}

func TestCredentialRepository_DeleteIfMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewCredentialRepository(filepath.Join(t.TempDir(), "session.json"), "authToken")

	deleted, err := repo.DeleteIfMatch(ctx, "old")
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repo.Save(ctx, "new"))

	deleted, err = repo.DeleteIfMatch(ctx, "old")
	require.NoError(t, err)
	assert.False(t, deleted)

	token, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", token)

	deleted, err = repo.DeleteIfMatch(ctx, "new")
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, repository.ErrCredentialNotFound)
}

func TestCredentialRepository_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewCredentialRepository(path, "authToken").Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCredentialNotFound)
}
