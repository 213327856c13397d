package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconVideo    = "🎬"
	IconMusic    = "🎵"
	IconError    = "❌"
	IconSuccess  = "✅"
	IconLink     = "🔗"
)

// Text fragments
const (
	AppTitle          = "MediaSaver"
	URLPlaceholder    = "Paste a YouTube, TikTok or Instagram link…"
	DownloadMP4Label  = "MP4"
	DownloadMP3Label  = "MP3"
	BadgePlaceholder  = "—"
	HealthWarnPrefix  = "Backend unreachable at "
	SettingsSavedNote = "Settings saved"
)

// Layout sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 640

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
	MobileButtonWidth  float32 = 96
)

// Health check behavior on startup
const (
	HealthCheckTimeout = 5 * time.Second
)
