package redis

import (
	"context"

	"adminpanel/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// deleteIfMatch compares and deletes in one step so a credential saved by
// another process in between is never removed.
var deleteIfMatch = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// credentialRepository stores the credential as a plain string value.
type credentialRepository struct {
	client redis.Cmdable
	key    string
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(client redis.Cmdable, key string) repository.CredentialRepository {
	return &credentialRepository{client: client, key: key}
}

// Load returns the persisted credential.
func (repo *credentialRepository) Load(ctx context.Context) (string, error) {
	token, err := repo.client.Get(ctx, repo.key).Result()
	if errors.Is(err, redis.Nil) || (err == nil && token == "") {
		return "", repository.ErrCredentialNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to load credential from redis")
	}

	return token, nil
}

// Save replaces the persisted credential. The API decides expiry, so the
// key is stored without a TTL.
func (repo *credentialRepository) Save(ctx context.Context, token string) error {
	if err := repo.client.Set(ctx, repo.key, token, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to save credential to redis")
	}

	return nil
}

// Delete removes the persisted credential.
func (repo *credentialRepository) Delete(ctx context.Context) error {
	if err := repo.client.Del(ctx, repo.key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete credential from redis")
	}

	return nil
}

// DeleteIfMatch removes the persisted credential if it is still token.
func (repo *credentialRepository) DeleteIfMatch(ctx context.Context, token string) (bool, error) {
	deleted, err := deleteIfMatch.Run(ctx, repo.client, []string{repo.key}, token).Int()
	if err != nil {
		return false, errors.Wrap(err, "failed to delete credential from redis")
	}

	return deleted > 0, nil
}
