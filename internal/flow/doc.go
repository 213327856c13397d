package flow

// Package flow owns the single view-state bundle and the download
// orchestration: detect platform, call the backend client, hand the payload
// to the materializer, and walk the idle → loading → success/error → idle
// state machine. Transitions are pure functions on State; the Controller
// owns the current value, the cosmetic progress ticker, and the auto-clear
// timers.
