package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates an entry field optimized for mobile
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

// GetMobileSpacing returns appropriate spacing for mobile devices
func (m *MobileUI) GetMobileSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}

// CreateAdaptiveContainer creates a container that adapts to mobile orientation
func (m *MobileUI) CreateAdaptiveContainer(columns int, objects ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		// Single column stacks the action buttons under the URL field
		return container.NewAdaptiveGrid(1, objects...)
	}
	return container.NewAdaptiveGrid(columns, objects...)
}
