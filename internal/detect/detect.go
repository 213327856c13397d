package detect

import "strings"

// Platform is the social-media origin of a pasted link
type Platform string

const (
	// PlatformYouTube matches youtube.com and youtu.be links
	PlatformYouTube Platform = "youtube"

	// PlatformTikTok matches tiktok.com links
	PlatformTikTok Platform = "tiktok"

	// PlatformInstagram matches instagram.com links
	PlatformInstagram Platform = "instagram"

	// PlatformUnknown is returned for empty or unrecognized input
	PlatformUnknown Platform = "unknown"
)

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the label shown on the platform badge in the UI
func (p Platform) DisplayName() string {
	switch p {
	case PlatformYouTube:
		return "YouTube"
	case PlatformTikTok:
		return "TikTok"
	case PlatformInstagram:
		return "Instagram"
	default:
		return ""
	}
}

// Detect returns the platform for the given URL string. Checks run in a
// fixed order (youtube, then tiktok, then instagram) and the first match
// wins; anything else, including the empty string, is PlatformUnknown.
func Detect(rawURL string) Platform {
	lower := strings.ToLower(rawURL)

	if strings.Contains(lower, "youtube.com") || strings.Contains(lower, "youtu.be") {
		return PlatformYouTube
	}
	if strings.Contains(lower, "tiktok.com") {
		return PlatformTikTok
	}
	if strings.Contains(lower, "instagram.com") {
		return PlatformInstagram
	}

	return PlatformUnknown
}
