package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/custodia-labs/flobnar/internal/core/domain"
	"github.com/custodia-labs/flobnar/internal/core/ports/driven"
	"github.com/custodia-labs/flobnar/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyGridRows       = "grid.rows"
	keyGridColumns    = "grid.columns"
	keyMaxDepth       = "interpreter.max_depth"
	keyEOFValue       = "interpreter.eof_value"
	keySeed           = "interpreter.seed"
	keyHistoryEnabled = "history.enabled"
)

type settingKind int

const (
	kindInt settingKind = iota
	kindBool
)

var settingKinds = map[string]settingKind{
	keyGridRows:       kindInt,
	keyGridColumns:    kindInt,
	keyMaxDepth:       kindInt,
	keyEOFValue:       kindInt,
	keySeed:           kindInt,
	keyHistoryEnabled: kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current settings. Missing or invalid values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Grid: domain.GridSettings{
			Rows:    s.getExtent(keyGridRows, defaults.Grid.Rows),
			Columns: s.getExtent(keyGridColumns, defaults.Grid.Columns),
		},
		Interpreter: domain.InterpreterSettings{
			MaxDepth: s.getNonNegativeInt(keyMaxDepth, defaults.Interpreter.MaxDepth),
			EOFValue: s.getInt(keyEOFValue, defaults.Interpreter.EOFValue),
			Seed:     int64(s.getInt(keySeed, int(defaults.Interpreter.Seed))),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(keyHistoryEnabled, defaults.History.Enabled),
		},
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	values := []struct {
		key   string
		value any
	}{
		{keyGridRows, settings.Grid.Rows},
		{keyGridColumns, settings.Grid.Columns},
		{keyMaxDepth, settings.Interpreter.MaxDepth},
		{keyEOFValue, settings.Interpreter.EOFValue},
		{keySeed, settings.Interpreter.Seed},
		{keyHistoryEnabled, settings.History.Enabled},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}
	return nil
}

// Set parses value according to the key's type and persists it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		return s.configStore.Set(key, b)
	default:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s expects an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		if err := validateInt(key, n); err != nil {
			return err
		}
		return s.configStore.Set(key, n)
	}
}

// Reset restores a key to its default by removing the stored value.
func (s *SettingsService) Reset(key string) error {
	if _, ok := settingKinds[key]; !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	return s.configStore.Delete(key)
}

// Keys lists the supported setting keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validateInt(key string, n int64) error {
	switch key {
	case keyGridRows, keyGridColumns:
		if n <= 0 || n > domain.MaxExtent {
			return fmt.Errorf("%w: %s must be between 1 and %d", domain.ErrInvalidInput, key, domain.MaxExtent)
		}
	case keyMaxDepth:
		if n < 0 {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidInput, key)
		}
	}
	return nil
}

// getInt returns the stored integer or the default when the key is absent.
func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getExtent(key string, defaultVal int) int {
	if n := s.getInt(key, defaultVal); domain.ValidExtent(n) {
		return n
	}
	return defaultVal
}

func (s *SettingsService) getNonNegativeInt(key string, defaultVal int) int {
	if n := s.getInt(key, defaultVal); n >= 0 {
		return n
	}
	return defaultVal
}

// getBool returns the stored bool or the default when absent or not a bool.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, ok := s.configStore.Get(key)
	if !ok {
		return defaultVal
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return defaultVal
}
