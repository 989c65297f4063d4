package ui

// Package ui contains the Fyne-based desktop user interface for the login demo.
// It hosts the login workflow: it owns the form fields, shows snackbars,
// moves focus, and renders settings. All UI strings are localized via Localization.
