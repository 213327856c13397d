package model

// Response status values reported by the backend
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DownloadRequest is the JSON body sent to the backend for one download
// action. The canonical field name for the output container is "kind"; the
// legacy "format" spelling from an earlier backend snapshot is not sent.
// A request is constructed fresh per action and never persisted.
type DownloadRequest struct {
	URL  string `json:"url"`
	Kind Kind   `json:"kind"`
}

// DownloadResponse is the JSON body the backend returns. Data carries the
// whole media file as a Base64 string; Message is optional and only
// meaningful when Status is "error" or as a human-readable success note.
type DownloadResponse struct {
	Status   string `json:"status"`
	Filename string `json:"filename"`
	Data     string `json:"data"`
	Message  string `json:"message,omitempty"`
}

// IsError returns true if the backend reported a failure inside a 2xx body
func (r *DownloadResponse) IsError() bool {
	return r.Status == StatusError
}
