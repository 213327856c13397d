package ui

// Package ui contains the Fyne-based front end: a single-screen,
// mobile-first layout with a URL field, a platform badge, MP4/MP3 download
// buttons, and a status line. The UI owns no state of its own; it renders
// flow.State snapshots and forwards user input to the flow controller.
