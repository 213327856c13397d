package model

// Package model defines the data structures shared by the API client, the
// flow controller, and the UI: the wire request/response pair exchanged with
// the backend and the output kind enum. Nothing here is persisted; every
// value lives for a single user interaction.
