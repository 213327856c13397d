package platform

// Package platform contains OS integration glue: locating the downloads
// directory, creating it, and revealing a saved file in the system file
// manager.
