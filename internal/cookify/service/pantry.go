package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/cookify/internal/cookify/domain"
	"github.com/aussiebroadwan/cookify/internal/cookify/store"
	"github.com/aussiebroadwan/cookify/pkg/idx"
	"github.com/aussiebroadwan/cookify/pkg/slogx"
)

// PantryInput is what a client sends to add or update a pantry item.
type PantryInput struct {
	Name       string
	Quantity   string
	ExpiryDate *time.Time
}

type PantryService struct {
	Store store.Store
	Clock Clock
}

// List returns the user's pantry, soonest expiry first.
func (s *PantryService) List(ctx context.Context, userID string) ([]domain.PantryItem, error) {
	items, err := s.Store.Pantry().ListPantryItems(ctx, userID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list pantry items", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return items, nil
}

// Upsert adds the item or updates the one with the same name.
func (s *PantryService) Upsert(ctx context.Context, userID string, in PantryInput) (domain.PantryItem, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return domain.PantryItem{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	now := s.Clock.Now()
	item, err := s.Store.Pantry().UpsertPantryItem(ctx, domain.PantryItem{
		ID:         idx.NewAt(now).String(),
		UserID:     userID,
		Name:       name,
		Quantity:   strings.TrimSpace(in.Quantity),
		ExpiryDate: in.ExpiryDate,
		AddedAt:    now,
		CreatedAt:  now,
	})
	if err != nil {
		log.Error("failed to upsert pantry item", slog.String("name", name), slog.Any("error", err))
		return domain.PantryItem{}, fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}

	return item, nil
}

// Delete removes the named item. ErrNotFound when the user has no such item.
func (s *PantryService) Delete(ctx context.Context, userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if err := s.Store.Pantry().DeletePantryItem(ctx, userID, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		slogx.FromContext(ctx).Error("failed to delete pantry item", slog.String("name", name), slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
	}
	return nil
}
