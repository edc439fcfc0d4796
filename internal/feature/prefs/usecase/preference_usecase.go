// Package usecase implements the business logic for display preferences.
package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/domain/entity"
)

// ErrInvalidTheme is returned when a client submits an unknown theme name.
var ErrInvalidTheme = errors.New("invalid theme")

// PreferenceRepository abstracts the persistence layer for preferences.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type PreferenceRepository interface {
	Find(ctx context.Context, clientID string) (entity.Preference, error)
	Save(ctx context.Context, pref entity.Preference) error
}

// ErrNotFound is returned by repositories when no preference exists for a
// client.
var ErrNotFound = errors.New("preference not found")

// PreferenceUsecase provides business logic for preference operations.
type PreferenceUsecase struct {
	repo PreferenceRepository
}

// NewPreferenceUsecase creates a new PreferenceUsecase with the given repository.
func NewPreferenceUsecase(r PreferenceRepository) *PreferenceUsecase {
	return &PreferenceUsecase{repo: r}
}

// Theme returns the saved theme for clientID, or the default when the
// client never saved one.
func (u *PreferenceUsecase) Theme(ctx context.Context, clientID string) (string, error) {
	pref, err := u.repo.Find(ctx, clientID)
	if errors.Is(err, ErrNotFound) {
		return entity.DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("load preference: %w", err)
	}
	if !entity.ValidTheme(pref.Theme) {
		return entity.DefaultTheme, nil
	}
	return pref.Theme, nil
}

// SetTheme validates and persists the theme for clientID.
func (u *PreferenceUsecase) SetTheme(ctx context.Context, clientID, theme string) error {
	if !entity.ValidTheme(theme) {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	if err := u.repo.Save(ctx, entity.Preference{ClientID: clientID, Theme: theme}); err != nil {
		return fmt.Errorf("save preference: %w", err)
	}
	return nil
}
