package download

// Package download implements the HTTP client for the external media backend.
// The backend does all fetching and transcoding; this package only issues one
// POST per download action, decodes the typed response, and translates
// transport and HTTP failures into single human-readable errors for the flow
// controller to display.
