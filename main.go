package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/login-demo/internal/config"
	"github.com/ytget/login-demo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.login-demo"
)

func main() {
	// Log version information
	fmt.Printf("Login demo v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Apply theme
	myApp.Settings().SetTheme(ui.NewLoginTheme(settings.GetCompactTheme()))

	myWindow := myApp.NewWindow(AppID)
	myWindow.Resize(settings.GetWindowSize())
	myWindow.CenterOnScreen()

	// Create and setup UI
	ui.NewLoginUI(myWindow, myApp, version)

	// Show and run
	myWindow.ShowAndRun()
}
