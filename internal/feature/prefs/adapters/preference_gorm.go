// Package adapters provides the repository implementation for the prefs feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/domain/entity"
	"github.com/dahldoescards/bowman-tracker/internal/feature/prefs/usecase"
)

// preferenceGorm is the GORM-backed implementation of PreferenceRepository.
// It works against both the SQLite and the PostgreSQL driver.
type preferenceGorm struct {
	db *gorm.DB
}

var _ usecase.PreferenceRepository = (*preferenceGorm)(nil)

// NewPreferenceRepository creates a new GORM-backed preference repository.
func NewPreferenceRepository(db *gorm.DB) *preferenceGorm {
	return &preferenceGorm{db: db}
}

// Find returns the preference stored for clientID.
func (r *preferenceGorm) Find(ctx context.Context, clientID string) (entity.Preference, error) {
	var pref entity.Preference
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Preference{}, usecase.ErrNotFound
	}
	if err != nil {
		return entity.Preference{}, err
	}
	return pref, nil
}

// Save inserts or updates the preference for pref.ClientID.
func (r *preferenceGorm) Save(ctx context.Context, pref entity.Preference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "client_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"theme", "updated_at"}),
		}).
		Create(&pref).Error
}
