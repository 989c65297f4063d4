package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	VersionFormat      = "%s v%s"
)

// Layout sizing
const (
	FieldWidth      float32 = 320
	FieldSpacing    float32 = 20
	LoginButtonMinW float32 = 120
)

// Snackbar sizing and behavior
const (
	SnackbarWidth     float32 = 360
	SnackbarHeight    float32 = 48
	SnackbarMargin    float32 = 16
	SnackbarAutoHide          = 4 * time.Second
	SnackbarMinLength         = 100 * time.Millisecond
)
