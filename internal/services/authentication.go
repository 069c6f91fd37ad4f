package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"qbank/internal/datastore/redis_store"
	"qbank/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
)

type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Authentication is the single shared password gate. A successful login
// creates a redis-backed session and hands out a token referencing it, so
// sessions can be expired server-side.
type Authentication struct {
	secret        string
	adminPassword string
	redisSession  redis.UniversalClient
}

func NewAuthentication(container *do.Injector) (*Authentication, error) {
	vs, err := do.InvokeNamed[map[string]string](container, "envs")
	if err != nil {
		return nil, err
	}

	redisSession, err := do.InvokeNamed[redis.UniversalClient](container, "redis-session")
	if err != nil {
		return nil, err
	}

	return &Authentication{vs["JWT_SECRET"], vs["ADMIN_PASSWORD"], redisSession}, nil
}

func (authentication *Authentication) Login(ctx context.Context, password string) (string, error) {
	if authentication.adminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(password), []byte(authentication.adminPassword)) != 1 {
		return "", errorx.Wrap(errors.New("wrong password"), errorx.Authn)
	}

	session := &models.AdminSession{
		ID:       uuid.NewString(),
		IssuedAt: time.Now().UTC(),
	}
	if err := redis_store.SetAdminSession(ctx, authentication.redisSession, session, SESSION_TTL); err != nil {
		return "", errorx.Wrap(err, errorx.Service)
	}

	claims := SessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(session.IssuedAt.Add(SESSION_TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(authentication.secret))
}

func (authentication *Authentication) Validate(ctx context.Context, token string) (*models.AdminSession, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return []byte(authentication.secret), nil
	}
	jwtToken, err := jwt.ParseWithClaims(token, &SessionClaims{}, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Authn)
	}

	claims, ok := jwtToken.Claims.(*SessionClaims)
	if !ok {
		return nil, errorx.Wrap(errors.New("invalid token claims"), errorx.Authn)
	}

	session, err := redis_store.GetAdminSession(ctx, authentication.redisSession, claims.SessionID)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.Service)
	}
	if session == nil {
		return nil, errorx.Wrap(errors.New("session expired"), errorx.Authn)
	}
	return session, nil
}

func (authentication *Authentication) Logout(ctx context.Context, session *models.AdminSession) error {
	return redis_store.DeleteAdminSession(ctx, authentication.redisSession, session.ID)
}
