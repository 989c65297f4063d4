package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/login-demo/internal/auth"
	"github.com/ytget/login-demo/internal/config"
	"github.com/ytget/login-demo/internal/login"
	"github.com/ytget/login-demo/internal/model"
)

var errFieldEmpty = errors.New("field is empty")

// LoginUI represents the login window and hosts the login workflow
type LoginUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	workflow     *login.Workflow
	snackbar     *Snackbar
	version      string

	titleLabel    *widget.Label
	footerLabel   *widget.Label
	usernameEntry *formEntry
	passwordEntry *formEntry
	visibilityBtn *widget.Button
	loginBtn      *widget.Button

	// Field error flags, written by the workflow goroutine
	flagsMutex    sync.Mutex
	usernameEmpty bool
	passwordEmpty bool

	passwordVisible bool
	attempts        int

	ctx    context.Context
	cancel context.CancelFunc
}

// NewLoginUI creates and initializes the login window
func NewLoginUI(window fyne.Window, app fyne.App, version string) *LoginUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())
	ui := &LoginUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		version:      version,
		ctx:          ctx,
		cancel:       cancel,
	}

	ui.snackbar = NewSnackbar(window.Canvas(), settings.GetSnackbarDuration())
	ui.workflow = login.NewWorkflow(auth.NewDemoAuthenticator(), login.NewHooks(ui, ui, ui.snackbar, ui.clearFields))
	ui.workflow.SetMessages(localization.WorkflowMessages())
	ui.workflow.SetAttemptCallback(ui.onAttempt)

	window.SetTitle(localization.GetText(KeyAppTitle))
	if icon, err := LoadAppIcon(); err == nil {
		window.SetIcon(icon)
	} else {
		log.Printf("App icon not loaded: %v", err)
	}
	window.SetOnClosed(ui.teardown)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *LoginUI) setupUI() {
	// Create menu
	ui.createMenu()

	ui.titleLabel = widget.NewLabelWithStyle(ui.localization.GetText(KeyAppTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance
	header := container.NewBorder(nil, nil, nil, settingsBtn, ui.titleLabel)

	ui.usernameEntry = newFormEntry(false)
	ui.usernameEntry.SetPlaceHolder(ui.localization.GetText(KeyUsername))
	ui.usernameEntry.Validator = ui.fieldValidator(model.FieldUsername)
	// Enter in the username field moves on to the password field
	ui.usernameEntry.OnSubmitted = func(string) {
		ui.window.Canvas().Focus(ui.passwordEntry)
	}

	ui.passwordEntry = newFormEntry(true)
	ui.passwordEntry.SetPlaceHolder(ui.localization.GetText(KeyPassword))
	ui.passwordEntry.Validator = ui.fieldValidator(model.FieldPassword)
	ui.passwordEntry.OnSubmitted = func(string) {
		ui.onLoginClick()
	}

	ui.visibilityBtn = widget.NewButtonWithIcon("", VisibilityToggleIcon(false), ui.onToggleVisibility)
	ui.visibilityBtn.Importance = widget.LowImportance
	ui.passwordEntry.ActionItem = ui.visibilityBtn

	ui.loginBtn = widget.NewButton(ui.localization.GetText(KeyLogin), ui.onLoginClick)
	ui.loginBtn.Importance = widget.HighImportance

	fieldSize := fyne.NewSize(FieldWidth, ui.usernameEntry.MinSize().Height)
	form := container.NewVBox(
		container.NewGridWrap(fieldSize, ui.usernameEntry),
		space(FieldSpacing),
		container.NewGridWrap(fieldSize, ui.passwordEntry),
		space(FieldSpacing),
		container.NewCenter(container.NewGridWrap(fyne.NewSize(LoginButtonMinW, ui.loginBtn.MinSize().Height), ui.loginBtn)),
	)

	ui.footerLabel = widget.NewLabel("")
	ui.footerLabel.Alignment = fyne.TextAlignCenter
	ui.updateFooter()

	content := container.NewBorder(
		header,                    // top
		ui.footerLabel,            // bottom
		nil,                       // left
		nil,                       // right
		container.NewCenter(form), // center
	)

	ui.window.SetContent(content)
	ui.window.Canvas().Focus(ui.usernameEntry)

	log.Printf("UI setup completed successfully")
}

// space returns an empty object of the given height
func space(height float32) fyne.CanvasObject {
	rect := canvas.NewRectangle(color.Transparent)
	rect.SetMinSize(fyne.NewSize(0, height))
	return rect
}

// createMenu creates the application menu
func (ui *LoginUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *LoginUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.workflow.SetMessages(ui.localization.WorkflowMessages())

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *LoginUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.usernameEntry.SetPlaceHolder(ui.localization.GetText(KeyUsername))
	ui.passwordEntry.SetPlaceHolder(ui.localization.GetText(KeyPassword))
	ui.loginBtn.SetText(ui.localization.GetText(KeyLogin))
	ui.updateFooter()
}

func (ui *LoginUI) updateFooter() {
	text := fmt.Sprintf(VersionFormat, ui.localization.GetText(KeyAppTitle), ui.version)
	if ui.attempts > 0 {
		text += fmt.Sprintf("%s%s: %d", MiddleDotSeparator, ui.localization.GetText(KeyAttempts), ui.attempts)
	}
	ui.footerLabel.SetText(text)
}

// onShowSettings shows the settings dialog
func (ui *LoginUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running UI
func (ui *LoginUI) applySettings() {
	ui.snackbar.SetDuration(ui.settings.GetSnackbarDuration())
	ui.app.Settings().SetTheme(NewLoginTheme(ui.settings.GetCompactTheme()))
	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}

	req := model.NotificationRequest{Message: ui.localization.GetText(KeySettingsSaved)}
	go ui.snackbar.ShowNotification(ui.ctx, req)
}

// onToggleVisibility shows or masks the password
func (ui *LoginUI) onToggleVisibility() {
	ui.passwordVisible = !ui.passwordVisible
	ui.passwordEntry.Password = !ui.passwordVisible
	ui.visibilityBtn.SetIcon(VisibilityToggleIcon(ui.passwordVisible))
	ui.passwordEntry.Refresh()
}

// onLoginClick reads the fields and runs the workflow off the UI goroutine,
// since it waits for the snackbar to resolve
func (ui *LoginUI) onLoginClick() {
	username := ui.usernameEntry.Text
	password := ui.passwordEntry.Text
	go ui.submit(username, password)
}

func (ui *LoginUI) submit(username, password string) *model.LoginAttempt {
	return ui.workflow.SubmitCredentials(ui.ctx, model.Credentials{Username: username, Password: password})
}

func (ui *LoginUI) onAttempt(attempt *model.LoginAttempt) {
	if attempt.State.IsFailure() {
		log.Printf("Login attempt %s failed: state=%s notification=%s duration=%s",
			attempt.ID, attempt.State, attempt.Notification, attempt.Duration())
	} else {
		log.Printf("Login attempt %s: state=%s notification=%s duration=%s",
			attempt.ID, attempt.State, attempt.Notification, attempt.Duration())
	}
	fyne.Do(func() {
		ui.attempts++
		ui.updateFooter()
	})
}

// fieldValidator reports the workflow's empty flag as a validation error
func (ui *LoginUI) fieldValidator(field model.Field) func(string) error {
	return func(string) error {
		if ui.isFieldEmpty(field) {
			return errFieldEmpty
		}
		return nil
	}
}

func (ui *LoginUI) isFieldEmpty(field model.Field) bool {
	ui.flagsMutex.Lock()
	defer ui.flagsMutex.Unlock()
	if field == model.FieldUsername {
		return ui.usernameEmpty
	}
	return ui.passwordEmpty
}

func (ui *LoginUI) entryFor(field model.Field) *formEntry {
	if field == model.FieldUsername {
		return ui.usernameEntry
	}
	return ui.passwordEntry
}

// SetFieldEmpty implements login.FieldStateSink
func (ui *LoginUI) SetFieldEmpty(field model.Field, empty bool) {
	ui.flagsMutex.Lock()
	if field == model.FieldUsername {
		ui.usernameEmpty = empty
	} else {
		ui.passwordEmpty = empty
	}
	ui.flagsMutex.Unlock()

	entry := ui.entryFor(field)
	fyne.DoAndWait(func() {
		_ = entry.Validate()
		entry.SetError(empty)
	})
}

// RequestFocus implements login.FocusController
func (ui *LoginUI) RequestFocus(field model.Field) {
	entry := ui.entryFor(field)
	fyne.DoAndWait(func() {
		ui.window.Canvas().Focus(entry)
	})
}

// ClearFocus implements login.FocusController
func (ui *LoginUI) ClearFocus() {
	fyne.DoAndWait(func() {
		ui.window.Canvas().Unfocus()
	})
}

// clearFields resets both inputs after a successful login
func (ui *LoginUI) clearFields() {
	fyne.DoAndWait(func() {
		ui.usernameEntry.SetText("")
		ui.passwordEntry.SetText("")
	})
}

// teardown cancels pending work when the window closes
func (ui *LoginUI) teardown() {
	ui.settings.SetWindowSize(ui.window.Canvas().Size())
	ui.cancel()
	ui.snackbar.Close()
}
