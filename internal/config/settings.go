package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeySnackbarDuration = "snackbar_duration_seconds"
	KeyCompactTheme     = "compact_theme"
	KeyWindowWidth      = "window_width"
	KeyWindowHeight     = "window_height"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultSnackbarDuration = 4 // seconds, matches a short snackbar
	DefaultCompactTheme     = false
	DefaultWindowWidth      = 700
	DefaultWindowHeight     = 400
)

// Limits
const (
	MinSnackbarDuration = 1
	MaxSnackbarDuration = 10

	MinWindowWidth  = 700
	MinWindowHeight = 400
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"it":     "Italiano",
		"pt":     "Português",
	}
}

// GetSnackbarSeconds returns how long a notification stays visible, in seconds
func (s *Settings) GetSnackbarSeconds() int {
	value := s.app.Preferences().Int(KeySnackbarDuration)
	if value <= 0 {
		s.SetSnackbarSeconds(DefaultSnackbarDuration)
		return DefaultSnackbarDuration
	}
	return value
}

// SetSnackbarSeconds sets the notification display time, clamped to the allowed range
func (s *Settings) SetSnackbarSeconds(seconds int) {
	if seconds < MinSnackbarDuration {
		seconds = MinSnackbarDuration
	}
	if seconds > MaxSnackbarDuration {
		seconds = MaxSnackbarDuration
	}
	s.app.Preferences().SetInt(KeySnackbarDuration, seconds)
}

// GetSnackbarDuration returns the notification display time
func (s *Settings) GetSnackbarDuration() time.Duration {
	return time.Duration(s.GetSnackbarSeconds()) * time.Second
}

// GetCompactTheme returns whether the compact theme is enabled
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme enables or disables the compact theme
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

// GetWindowSize returns the last saved window size, never below the minimum
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return fyne.NewSize(float32(width), float32(height))
}

// SetWindowSize stores the window size
func (s *Settings) SetWindowSize(size fyne.Size) {
	s.app.Preferences().SetInt(KeyWindowWidth, int(size.Width))
	s.app.Preferences().SetInt(KeyWindowHeight, int(size.Height))
}
