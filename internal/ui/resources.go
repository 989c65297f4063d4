package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "appicon.png"
)

// LoadAppIcon loads the window icon from file path
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// VisibilityToggleIcon returns the icon of the password visibility toggle.
// It shows the action the toggle performs: an eye while the password is
// hidden, a crossed eye while it is visible.
func VisibilityToggleIcon(visible bool) fyne.Resource {
	if visible {
		return theme.VisibilityOffIcon()
	}
	return theme.VisibilityIcon()
}
