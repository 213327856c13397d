package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/mediasaver/media-saver/internal/config"
	"github.com/mediasaver/media-saver/internal/download"
	"github.com/mediasaver/media-saver/internal/flow"
	"github.com/mediasaver/media-saver/internal/model"
	"github.com/mediasaver/media-saver/internal/platform"
)

// RootUI represents the main UI structure. It renders flow.State snapshots
// and forwards input to the flow controller; all view state lives in the
// controller.
type RootUI struct {
	window     fyne.Window
	app        fyne.App
	controller *flow.Controller
	client     download.Requester
	settings   *config.Settings
	mobile     *MobileUI
	log        *zap.Logger

	urlEntry    *widget.Entry
	badge       *widget.Label
	mp4Btn      *widget.Button
	mp3Btn      *widget.Button
	statusLabel *widget.Label
	spinner     *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, controller *flow.Controller, client download.Requester, settings *config.Settings, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		window:     window,
		app:        app,
		controller: controller,
		client:     client,
		settings:   settings,
		mobile:     NewMobileUI(app),
		log:        logger,
	}

	window.SetTitle(AppTitle)
	ui.setupUI()

	// Every flow transition re-renders on the UI thread.
	controller.SetUpdateCallback(func(s flow.State) {
		fyne.Do(func() { ui.render(s) })
	})

	go ui.checkBackend()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = ui.mobile.CreateMobileEntry(URLPlaceholder)
	ui.urlEntry.OnChanged = func(text string) {
		ui.controller.SetURL(text)
	}
	// Enter in the URL field downloads with the configured default kind
	ui.urlEntry.OnSubmitted = func(string) {
		ui.controller.Download(ui.settings.GetDefaultKind())
	}

	ui.badge = widget.NewLabel(BadgePlaceholder)
	ui.badge.TextStyle = fyne.TextStyle{Bold: true}

	ui.mp4Btn = ui.mobile.CreateMobileButton(IconVideo+" "+DownloadMP4Label, func() {
		ui.controller.Download(model.KindMP4)
	})
	ui.mp4Btn.Importance = widget.HighImportance

	ui.mp3Btn = ui.mobile.CreateMobileButton(IconMusic+" "+DownloadMP3Label, func() {
		ui.controller.Download(model.KindMP3)
	})

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	folderBtn := widget.NewButton(IconFolder, ui.onOpenDownloads)
	folderBtn.Importance = widget.LowImportance

	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Hide()

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusLabel.Alignment = fyne.TextAlignCenter

	title := widget.NewLabelWithStyle(IconLink+" "+AppTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	header := container.NewBorder(nil, nil, title, container.NewHBox(folderBtn, settingsBtn))

	urlRow := container.NewBorder(nil, nil, nil, ui.badge, ui.urlEntry)
	buttons := ui.mobile.CreateAdaptiveContainer(2, ui.mp4Btn, ui.mp3Btn)

	content := container.NewVBox(
		header,
		urlRow,
		buttons,
		ui.spinner,
		ui.statusLabel,
	)

	ui.window.SetContent(container.NewPadded(content))

	ui.render(ui.controller.State())
}

// render draws one state snapshot. Must run on the UI thread.
func (ui *RootUI) render(s flow.State) {
	// Platform badge always mirrors the current input.
	if name := s.Platform.DisplayName(); name != "" {
		ui.badge.SetText(name)
	} else {
		ui.badge.SetText(BadgePlaceholder)
	}

	// A success transition clears the URL; mirror that into the entry.
	// SetText re-triggers OnChanged with the same empty value, which settles
	// immediately.
	if s.URL == "" && ui.urlEntry.Text != "" {
		ui.urlEntry.SetText("")
	}

	if s.Loading() {
		ui.spinner.Show()
		ui.mp4Btn.Disable()
		ui.mp3Btn.Disable()
	} else {
		ui.spinner.Hide()
		ui.mp4Btn.Enable()
		ui.mp3Btn.Enable()
	}

	switch {
	case s.Loading():
		ui.statusLabel.SetText(s.Progress)
	case s.Error != "":
		ui.statusLabel.SetText(IconError + " " + s.Error)
	case s.Success != "":
		ui.statusLabel.SetText(IconSuccess + " " + s.Success)
	default:
		ui.statusLabel.SetText("")
	}
}

// onOpenDownloads reveals the downloads folder in the system file manager
func (ui *RootUI) onOpenDownloads() {
	dir := ui.settings.GetDownloadDirectory()
	if err := platform.OpenFileInManager(dir); err != nil {
		ui.log.Warn("failed to open downloads folder", zap.String("dir", dir), zap.Error(err))
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		widget.ShowPopUp(widget.NewLabel(SettingsSavedNote), ui.window.Canvas())
	})
}

// checkBackend pings the health endpoint once at startup so the user learns
// about a dead backend before pasting anything.
func (ui *RootUI) checkBackend() {
	ctx, cancel := context.WithTimeout(context.Background(), HealthCheckTimeout)
	defer cancel()

	if err := ui.client.Health(ctx); err != nil {
		ui.log.Warn("backend health check failed", zap.Error(err))
		fyne.Do(func() {
			ui.statusLabel.SetText(IconError + " " + HealthWarnPrefix + ui.settings.GetBackendURL())
		})
		return
	}

	ui.log.Info("backend is reachable", zap.String("base_url", ui.settings.GetBackendURL()))
}
