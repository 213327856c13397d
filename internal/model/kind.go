package model

// Kind represents the requested output container
type Kind string

const (
	// KindMP4 requests a video file
	KindMP4 Kind = "mp4"

	// KindMP3 requests an audio-only file
	KindMP3 Kind = "mp3"
)

// MIME types for the two output kinds
const (
	MIMEVideoMP4  = "video/mp4"
	MIMEAudioMPEG = "audio/mpeg"
)

// String returns the string representation of Kind
func (k Kind) String() string {
	return string(k)
}

// IsValid returns true if the kind is one of the supported output containers
func (k Kind) IsValid() bool {
	return k == KindMP4 || k == KindMP3
}

// MIMEType returns the MIME type handed to the file materializer for this kind
func (k Kind) MIMEType() string {
	if k == KindMP3 {
		return MIMEAudioMPEG
	}
	return MIMEVideoMP4
}

// Ext returns the file extension for this kind, including the leading dot
func (k Kind) Ext() string {
	if k == KindMP3 {
		return ".mp3"
	}
	return ".mp4"
}
