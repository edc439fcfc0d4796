package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/domain/entity"
)

type mockPreferenceRepository struct {
	findFn func(ctx context.Context, clientID string) (entity.Preference, error)
	saveFn func(ctx context.Context, pref entity.Preference) error
}

func (m *mockPreferenceRepository) Find(ctx context.Context, clientID string) (entity.Preference, error) {
	if m.findFn != nil {
		return m.findFn(ctx, clientID)
	}
	return entity.Preference{}, ErrNotFound
}

func (m *mockPreferenceRepository) Save(ctx context.Context, pref entity.Preference) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, pref)
	}
	return nil
}

func TestPreferenceUsecase_Theme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		findFn   func(ctx context.Context, clientID string) (entity.Preference, error)
		expected string
		wantErr  bool
	}{
		{
			name: "saved theme is returned",
			findFn: func(_ context.Context, _ string) (entity.Preference, error) {
				return entity.Preference{ClientID: "abc", Theme: entity.ThemeLight}, nil
			},
			expected: entity.ThemeLight,
		},
		{
			name:     "missing preference falls back to default",
			findFn:   nil,
			expected: entity.DefaultTheme,
		},
		{
			name: "unknown stored value falls back to default",
			findFn: func(_ context.Context, _ string) (entity.Preference, error) {
				return entity.Preference{ClientID: "abc", Theme: "sepia"}, nil
			},
			expected: entity.DefaultTheme,
		},
		{
			name: "repository error propagates",
			findFn: func(_ context.Context, _ string) (entity.Preference, error) {
				return entity.Preference{}, errors.New("db down")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			uc := NewPreferenceUsecase(&mockPreferenceRepository{findFn: tt.findFn})
			theme, err := uc.Theme(context.Background(), "abc")

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if theme != tt.expected {
				t.Errorf("expected theme %q, got %q", tt.expected, theme)
			}
		})
	}
}

func TestPreferenceUsecase_SetTheme(t *testing.T) {
	t.Parallel()

	var saved entity.Preference
	repo := &mockPreferenceRepository{
		saveFn: func(_ context.Context, pref entity.Preference) error {
			saved = pref
			return nil
		},
	}
	uc := NewPreferenceUsecase(repo)

	if err := uc.SetTheme(context.Background(), "abc", entity.ThemeLight); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ClientID != "abc" || saved.Theme != entity.ThemeLight {
		t.Errorf("unexpected saved preference %+v", saved)
	}
}

func TestPreferenceUsecase_SetTheme_Invalid(t *testing.T) {
	t.Parallel()

	saveCalled := false
	repo := &mockPreferenceRepository{
		saveFn: func(_ context.Context, _ entity.Preference) error {
			saveCalled = true
			return nil
		},
	}
	uc := NewPreferenceUsecase(repo)

	err := uc.SetTheme(context.Background(), "abc", "sepia")
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
	if saveCalled {
		t.Error("invalid theme must not reach the repository")
	}
}
