package repository

import (
	"context"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key persistence
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
