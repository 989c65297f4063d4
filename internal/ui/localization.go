package ui

import "github.com/ytget/login-demo/internal/login"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyUsername           = "username"
	KeyPassword           = "password"
	KeyLogin              = "login"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySnackbarDuration   = "snackbar_duration"
	KeyCompactTheme       = "compact_theme"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyAttempts           = "attempts"
	KeyUsernameEmpty      = "username_empty"
	KeyPasswordEmpty      = "password_empty"
	KeyInvalidCredentials = "invalid_credentials"
	KeyLoginSucceeded     = "login_succeeded"
	KeyCorrect            = "correct"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"it": "Italiano",
		"pt": "Português",
	}
}

// WorkflowMessages returns the login workflow notification texts in the current language
func (l *Localization) WorkflowMessages() login.Messages {
	return login.Messages{
		UsernameEmpty:      l.GetText(KeyUsernameEmpty),
		PasswordEmpty:      l.GetText(KeyPasswordEmpty),
		InvalidCredentials: l.GetText(KeyInvalidCredentials),
		LoginSucceeded:     l.GetText(KeyLoginSucceeded),
		CorrectAction:      l.GetText(KeyCorrect),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Login app demo",
		KeyUsername:           "Username",
		KeyPassword:           "Password",
		KeyLogin:              "Login",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySnackbarDuration:   "Notification duration (seconds)",
		KeyCompactTheme:       "Compact theme",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyAttempts:           "Attempts",
		KeyUsernameEmpty:      "Username is empty!",
		KeyPasswordEmpty:      "Password is empty!",
		KeyInvalidCredentials: "Username or password is incorrect!",
		KeyLoginSucceeded:     "Login succeeded!",
		KeyCorrect:            "Correct",
	}

	// Italian texts
	l.texts["it"] = map[string]string{
		KeyAppTitle:           "Demo di login",
		KeyUsername:           "Nome utente",
		KeyPassword:           "Password",
		KeyLogin:              "Accedi",
		KeySettings:           "Impostazioni",
		KeyFile:               "File",
		KeyLanguage:           "Lingua",
		KeySnackbarDuration:   "Durata notifiche (secondi)",
		KeyCompactTheme:       "Tema compatto",
		KeySave:               "Salva",
		KeyCancel:             "Annulla",
		KeySettingsSaved:      "Impostazioni salvate!",
		KeyAttempts:           "Tentativi",
		KeyUsernameEmpty:      "Il nome utente è vuoto!",
		KeyPasswordEmpty:      "La password è vuota!",
		KeyInvalidCredentials: "Nome utente o password errati!",
		KeyLoginSucceeded:     "Accesso riuscito!",
		KeyCorrect:            "Correggi",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Demo de login",
		KeyUsername:           "Usuário",
		KeyPassword:           "Senha",
		KeyLogin:              "Entrar",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeySnackbarDuration:   "Duração das notificações (segundos)",
		KeyCompactTheme:       "Tema compacto",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyAttempts:           "Tentativas",
		KeyUsernameEmpty:      "O usuário está vazio!",
		KeyPasswordEmpty:      "A senha está vazia!",
		KeyInvalidCredentials: "Usuário ou senha incorretos!",
		KeyLoginSucceeded:     "Login realizado!",
		KeyCorrect:            "Corrigir",
	}
}
