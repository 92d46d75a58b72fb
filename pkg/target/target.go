package target

import (
	"net/url"
	"strings"

	"VoicePlay/internal/entity"
)

// Extensions that mark a locator as direct media the native player can open.
var directMediaExtensions = []string{
	".mp4",
	".m3u8",
	".mpd",
	".mov",
	".avi",
	".mkv",
	".webm",
	".flv",
	".wmv",
	".m4v",
}

// Real-time transport schemes, always handed to the native player.
var streamingSchemes = []string{
	"rtmp://",
	"rtsp://",
	"mms://",
	"mmsh://",
}

// Classify decides which playback backend handles the locator and
// normalizes it. It never fails: anything that is neither a direct media
// file nor a streaming URL degrades to the embedded backend, which makes
// no assumption about codec support.
func Classify(locator string) entity.PlaybackTarget {
	lowered := strings.ToLower(strings.TrimSpace(locator))

	if !strings.Contains(lowered, "://") {
		locator = "https://" + locator
	}

	directMedia := false
	for _, ext := range directMediaExtensions {
		if strings.Contains(lowered, ext) {
			directMedia = true
			break
		}
	}
	if !directMedia {
		for _, scheme := range streamingSchemes {
			if strings.HasPrefix(lowered, scheme) {
				directMedia = true
				break
			}
		}
	}

	backend := entity.BackendEmbedded
	if directMedia {
		backend = entity.BackendNative
	}

	return entity.PlaybackTarget{
		Locator:     locator,
		Backend:     backend,
		DirectMedia: directMedia,
	}
}

// IsValidLocator accepts anything that parses as an absolute URL, or a
// dotted token without spaces ("youtube.com"). Deliberately permissive;
// Classify handles whatever gets through.
func IsValidLocator(locator string) bool {
	if u, err := url.Parse(locator); err == nil && u.Scheme != "" && u.Host != "" {
		return true
	}
	return strings.Contains(locator, ".") && !strings.Contains(locator, " ")
}

// Hostname extracts the host of a locator, or "" when it cannot be parsed.
func Hostname(locator string) string {
	u, err := url.Parse(locator)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
