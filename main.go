package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/mediasaver/media-saver/internal/config"
	"github.com/mediasaver/media-saver/internal/download"
	"github.com/mediasaver/media-saver/internal/flow"
	"github.com/mediasaver/media-saver/internal/materialize"
	"github.com/mediasaver/media-saver/internal/platform"
	"github.com/mediasaver/media-saver/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mediasaver.media-saver"
	AppName = "MediaSaver"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version))

	// A .env file can point the app at a different backend during development.
	config.LoadEnv()

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply glass theme
	myApp.Settings().SetTheme(ui.NewGlassTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Warn("failed to ensure downloads dir", zap.Error(err))
	}

	client := download.NewClient(settings.GetBackendURL(), logger)
	saver := materialize.NewFileSaver(downloadsDir, logger)
	controller := flow.NewController(client, saver, logger)
	defer controller.Close()

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, controller, client, settings, logger)

	// Show and run
	myWindow.ShowAndRun()
}
