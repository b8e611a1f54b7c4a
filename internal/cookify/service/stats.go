package service

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/cookify/internal/cookify/store"
)

// Stats are the public counters shown on the landing page.
type Stats struct {
	Users        int64
	SavedRecipes int64
	PantryItems  int64
}

type StatsService struct {
	Store store.Store
}

func (s *StatsService) Stats(ctx context.Context) (Stats, error) {
	var (
		out Stats
		err error
	)

	if out.Users, err = s.Store.Users().CountUsers(ctx); err != nil {
		return Stats{}, fmt.Errorf("%w: count users: %w", ErrServiceUnavailable, err)
	}
	if out.SavedRecipes, err = s.Store.SavedRecipes().CountSavedRecipes(ctx); err != nil {
		return Stats{}, fmt.Errorf("%w: count saved recipes: %w", ErrServiceUnavailable, err)
	}
	if out.PantryItems, err = s.Store.Pantry().CountPantryItems(ctx); err != nil {
		return Stats{}, fmt.Errorf("%w: count pantry items: %w", ErrServiceUnavailable, err)
	}

	return out, nil
}
