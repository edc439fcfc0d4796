// Package entity defines the domain models for the prefs feature.
package entity

import "time"

// Theme values accepted by the tracker UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	// DefaultTheme is used for clients that never saved a preference.
	DefaultTheme = ThemeDark
)

// ValidTheme reports whether t is an accepted theme name.
func ValidTheme(t string) bool {
	return t == ThemeLight || t == ThemeDark
}

// Preference stores per-client display settings that must survive
// restarts. ClientID is an opaque identifier chosen by the frontend.
type Preference struct {
	ID        uint      `gorm:"primaryKey"`
	ClientID  string    `gorm:"size:64;not null;uniqueIndex"`
	Theme     string    `gorm:"size:16;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
