package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/mmynk/khata/internal/models"
	"github.com/mmynk/khata/internal/storage"
)

// SettingsService reads and updates the singleton shop settings.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a new SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// ShopName returns the configured shop name, falling back to the
// default when no settings record exists or the stored name is empty.
func (s *SettingsService) ShopName(ctx context.Context) (string, error) {
	settings, err := s.store.GetShopSettings(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return models.DefaultShopName, nil
	}
	if err != nil {
		slog.Error("ShopName lookup failed", "error", err)
		return "", err
	}
	if settings.ShopName == "" {
		return models.DefaultShopName, nil
	}
	return settings.ShopName, nil
}

// SetShopName updates the shop name.
func (s *SettingsService) SetShopName(ctx context.Context, shopName string) error {
	if strings.TrimSpace(shopName) == "" {
		return ErrEmptyField
	}

	if err := s.store.SetShopName(ctx, shopName); err != nil {
		slog.Error("SetShopName failed", "error", err)
		return err
	}

	slog.Info("Shop name updated", "shop_name", shopName)
	return nil
}
