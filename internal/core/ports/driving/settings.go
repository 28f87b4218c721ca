package driving

import "github.com/custodia-labs/flobnar/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults.
	Get() (*domain.Settings, error)

	// Save persists settings.
	Save(settings *domain.Settings) error

	// Set parses value for the named key and persists it.
	Set(key, value string) error

	// Reset restores the named key to its default.
	Reset(key string) error

	// Keys lists the supported setting keys.
	Keys() []string
}
