package repository

import (
	"context"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
)

// SettingsRepository defines the interface for key/value settings persistence.
// Absence of a key is not an error: Get returns nil and callers apply defaults.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*entity.AppSetting, error)
	Set(ctx context.Context, key, value string) error
}
