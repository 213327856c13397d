package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/mediasaver/media-saver/internal/config"
	"github.com/mediasaver/media-saver/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	backendURLEntry  *widget.Entry
	downloadDirEntry *widget.Entry
	kindSelect       *widget.Select

	onSaved func()
}

// ShowSettingsDialog creates and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.backendURLEntry = widget.NewEntry()
	sd.backendURLEntry.SetPlaceHolder(config.LocalBackendURL)

	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	sd.kindSelect = widget.NewSelect([]string{
		model.KindMP4.String(),
		model.KindMP3.String(),
	}, nil)

	form := container.NewVBox(
		widget.NewLabel("Backend address (takes effect after restart)"),
		sd.backendURLEntry,
		widget.NewLabel("Downloads folder"),
		sd.downloadDirEntry,
		widget.NewLabel("Default format for Enter key"),
		sd.kindSelect,
	)

	sd.dialog = dialog.NewCustomConfirm("Settings", "Save", "Cancel", form,
		func(save bool) {
			if save {
				sd.saveSettings()
			}
		}, sd.window)
}

// loadCurrentSettings populates the dialog with current values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendURLEntry.SetText(sd.settings.GetBackendURL())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.kindSelect.SetSelected(sd.settings.GetDefaultKind().String())
}

// saveSettings persists the dialog values
func (sd *SettingsDialog) saveSettings() {
	if url := sd.backendURLEntry.Text; url != "" {
		sd.settings.SetBackendURL(url)
	}
	if dir := sd.downloadDirEntry.Text; dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}
	sd.settings.SetDefaultKind(model.Kind(sd.kindSelect.Selected))

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
