package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrTokenNaoEncontrado is returned when a refresh token is absent or expired.
var ErrTokenNaoEncontrado = errors.New("refresh token não encontrado")

// TokenRepository stores issued refresh tokens so they can be revoked on
// logout. Tokens live in Redis with a TTL matching their JWT expiry, so
// expired tokens disappear without a cleanup job.
type TokenRepository interface {
	Salvar(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error
	Buscar(ctx context.Context, token string) (uuid.UUID, error)
	Remover(ctx context.Context, token string) error
}

type redisTokenRepo struct{ rdb *redis.Client }

func NewTokenRepository(rdb *redis.Client) TokenRepository { return &redisTokenRepo{rdb: rdb} }

func tokenKey(token string) string { return "refresh:" + token }

func (r *redisTokenRepo) Salvar(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return r.rdb.Set(ctx, tokenKey(token), userID.String(), ttl).Err()
}

func (r *redisTokenRepo) Buscar(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := r.rdb.Get(ctx, tokenKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrTokenNaoEncontrado
	}
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(val)
}

func (r *redisTokenRepo) Remover(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, tokenKey(token)).Err()
}
