package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/login-demo/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(w, settings, NewLocalization(), func() { saved = true })
	sd.loadCurrentSettings()

	sd.languageSelect.SetSelected("it")
	sd.durationEntry.SetText("7")
	sd.compactCheck.SetChecked(true)
	sd.onSave(true)

	if !saved {
		t.Error("Save callback should be called")
	}
	if settings.GetLanguage() != "it" {
		t.Errorf("Language = %s, expected it", settings.GetLanguage())
	}
	if settings.GetSnackbarSeconds() != 7 {
		t.Errorf("Snackbar seconds = %d, expected 7", settings.GetSnackbarSeconds())
	}
	if !settings.GetCompactTheme() {
		t.Error("Compact theme should be enabled")
	}
}

func TestSettingsDialog_CancelAndInvalidInput(t *testing.T) {
	app := test.NewApp()
	w := test.NewWindow(widget.NewLabel(""))
	settings := config.NewSettings(app)

	saved := false
	sd := NewSettingsDialog(w, settings, NewLocalization(), func() { saved = true })
	sd.loadCurrentSettings()

	sd.durationEntry.SetText("9")
	sd.onSave(false)
	if saved {
		t.Error("Cancel should not call the save callback")
	}
	if settings.GetSnackbarSeconds() != config.DefaultSnackbarDuration {
		t.Errorf("Cancel should keep snackbar seconds, got %d", settings.GetSnackbarSeconds())
	}

	sd.durationEntry.SetText("abc")
	sd.onSave(true)
	if settings.GetSnackbarSeconds() != config.DefaultSnackbarDuration {
		t.Errorf("Invalid input should keep snackbar seconds, got %d", settings.GetSnackbarSeconds())
	}
}
