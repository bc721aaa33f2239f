package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/fulcitt/fulcitt-api/internal/domain/entity"
	"github.com/fulcitt/fulcitt-api/internal/domain/repository"
	"github.com/fulcitt/fulcitt-api/pkg/apperror"
)

// SettingsKeyPrintingLayout is the settings key the layout document lives under.
const SettingsKeyPrintingLayout = "printing_layout"

// LayoutService loads and stores the receipt printing layout
type LayoutService struct {
	settingsRepo repository.SettingsRepository
}

// NewLayoutService creates a new layout service
func NewLayoutService(settingsRepo repository.SettingsRepository) *LayoutService {
	return &LayoutService{
		settingsRepo: settingsRepo,
	}
}

// GetLayout returns the stored printing layout. An absent settings key is not
// an error: the documented default layout applies.
func (s *LayoutService) GetLayout(ctx context.Context) (*entity.PrintingLayout, error) {
	setting, err := s.settingsRepo.Get(ctx, SettingsKeyPrintingLayout)
	if err != nil {
		return nil, apperror.NewDatabaseError(err)
	}
	if setting == nil {
		return entity.DefaultPrintingLayout(), nil
	}

	var layout entity.PrintingLayout
	if err := json.Unmarshal([]byte(setting.Value), &layout); err != nil {
		log.Printf("Stored printing layout is not valid JSON, falling back to defaults: %v", err)
		return entity.DefaultPrintingLayout(), nil
	}
	return &layout, nil
}

// SetLayout validates and persists the printing layout
func (s *LayoutService) SetLayout(ctx context.Context, layout *entity.PrintingLayout) error {
	if !layout.Validate() {
		return apperror.ErrBadRequest
	}

	value, err := json.Marshal(layout)
	if err != nil {
		return apperror.ErrInternalServer
	}

	if err := s.settingsRepo.Set(ctx, SettingsKeyPrintingLayout, string(value)); err != nil {
		return apperror.NewDatabaseError(err)
	}
	return nil
}
