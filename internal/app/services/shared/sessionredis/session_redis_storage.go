package sessionredis

import (
	"context"

	"medcare-client/internal/app/contracts"
	"medcare-client/internal/app/models"
	"medcare-client/internal/pkg/constvars"
	"medcare-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// redisStorage keeps the session record under a fixed key with no
// expiry; the server call failing is the only invalidation signal.
type redisStorage struct {
	client *redis.Client
}

func NewSessionRedisStorage(client *redis.Client) contracts.SessionStorage {
	return &redisStorage{client: client}
}

func (r *redisStorage) Load(ctx context.Context) (*models.Session, error) {
	data, err := r.client.Get(ctx, constvars.SessionStorageKey).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrSessionStorageRead(err)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *redisStorage) Save(ctx context.Context, session *models.Session) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if err := r.client.Set(ctx, constvars.SessionStorageKey, jsonValue, 0).Err(); err != nil {
		return exceptions.ErrSessionStorageWrite(err)
	}
	return nil
}

func (r *redisStorage) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, constvars.SessionStorageKey).Err(); err != nil {
		return exceptions.ErrSessionStorageClear(err)
	}
	return nil
}
