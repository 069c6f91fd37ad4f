package redis_store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"qbank/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

func dbKeyAdminSession(sessionID string) string {
	return fmt.Sprintf("admin:session:%s", sessionID)
}

func SetAdminSession(ctx context.Context, client redis.UniversalClient, session *models.AdminSession, ttl time.Duration) error {
	encoded, err := msgpack.Marshal(session)
	if err != nil {
		return err
	}
	return client.Set(ctx, dbKeyAdminSession(session.ID), encoded, ttl).Err()
}

// GetAdminSession returns nil without error when the session is missing or
// has expired.
func GetAdminSession(ctx context.Context, client redis.UniversalClient, sessionID string) (*models.AdminSession, error) {
	encoded, err := client.Get(ctx, dbKeyAdminSession(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session models.AdminSession
	if err := msgpack.Unmarshal(encoded, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func DeleteAdminSession(ctx context.Context, client redis.UniversalClient, sessionID string) error {
	return client.Del(ctx, dbKeyAdminSession(sessionID)).Err()
}
