package inject

import (
	"fmt"
	"strings"

	"VoicePlay/internal/entity"
)

const noVideoError = "No video element found"

type IGenerator interface {
	Generate(command entity.Command, token string) string
}

// Generator produces the one-shot scripts that run inside the embedded
// surface. Scripts are stateless: each one re-queries the document for
// the video element, since the page may have replaced it between
// commands. Every control path posts exactly one execution report
// through the surface bridge, tagged with the caller's token; the
// scripts never throw into the host.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(command entity.Command, token string) string {
	token = sanitizeToken(token)

	switch command {
	case entity.CommandUnknown:
		return fmt.Sprintf(`
	(function() {
		%s
		post({ success: false, error: 'Unknown command' });
	})();
	`, postFunc(token))
	case entity.CommandExitFullscreen:
		// Acts on the document, not the element; works even when no
		// video can be located.
		return fmt.Sprintf(`
	(function() {
		%s
		try {
			if (document.exitFullscreen) {
				document.exitFullscreen();
			} else if (document.webkitExitFullscreen) {
				document.webkitExitFullscreen();
			} else if (document.mozCancelFullScreen) {
				document.mozCancelFullScreen();
			} else if (document.msExitFullscreen) {
				document.msExitFullscreen();
			}
			post({ success: true, command: 'exitFullscreen' });
		} catch (e) {
			post({ success: false, error: String(e) });
		}
	})();
	`, postFunc(token))
	default:
		return fmt.Sprintf(`
	(function() {
		%s
		var video = document.querySelector('video');
		if (!video) {
			post({ success: false, error: '%s' });
			return;
		}
		try {
%s
		} catch (e) {
			post({ success: false, error: String(e) });
		}
	})();
	`, postFunc(token), noVideoError, actionBody(command))
	}
}

// postFunc emits the report helper. The bridge channel is the WebView's
// postMessage bridge; the surface relays whatever arrives there back to
// the backend socket untouched.
func postFunc(token string) string {
	return fmt.Sprintf(`var post = function(payload) {
			payload.token = '%s';
			if (window.ReactNativeWebView && window.ReactNativeWebView.postMessage) {
				window.ReactNativeWebView.postMessage(JSON.stringify(payload));
			}
		};`, token)
}

func actionBody(command entity.Command) string {
	switch command {
	case entity.CommandPlay:
		return `			video.play();
			post({ success: true, command: 'play' });`
	case entity.CommandPause:
		return `			video.pause();
			post({ success: true, command: 'pause' });`
	case entity.CommandForward10:
		return `			video.currentTime += 10;
			post({ success: true, command: 'forward10', currentTime: video.currentTime });`
	case entity.CommandBackward10:
		return `			video.currentTime -= 10;
			post({ success: true, command: 'backward10', currentTime: video.currentTime });`
	case entity.CommandForward30:
		return `			video.currentTime += 30;
			post({ success: true, command: 'forward30', currentTime: video.currentTime });`
	case entity.CommandBackward30:
		return `			video.currentTime -= 30;
			post({ success: true, command: 'backward30', currentTime: video.currentTime });`
	case entity.CommandVolumeUp:
		return `			video.volume = Math.min(video.volume + 0.1, 1);
			post({ success: true, command: 'volumeUp', volume: video.volume });`
	case entity.CommandVolumeDown:
		return `			video.volume = Math.max(video.volume - 0.1, 0);
			post({ success: true, command: 'volumeDown', volume: video.volume });`
	case entity.CommandFullscreen:
		return `			if (video.requestFullscreen) {
				video.requestFullscreen();
			} else if (video.webkitRequestFullscreen) {
				video.webkitRequestFullscreen();
			} else if (video.mozRequestFullScreen) {
				video.mozRequestFullScreen();
			} else if (video.msRequestFullscreen) {
				video.msRequestFullscreen();
			}
			post({ success: true, command: 'fullscreen' });`
	case entity.CommandRestart:
		return `			video.currentTime = 0;
			video.play();
			post({ success: true, command: 'restart' });`
	case entity.CommandMute:
		return `			video.muted = true;
			post({ success: true, command: 'mute' });`
	case entity.CommandUnmute:
		return `			video.muted = false;
			post({ success: true, command: 'unmute' });`
	case entity.CommandSpeed:
		// indexOf yields -1 for a rate outside the set, so the next
		// index lands on the first entry. Kept for compatibility.
		return `			var speeds = [0.5, 0.75, 1, 1.25, 1.5, 2];
			var currentIndex = speeds.indexOf(video.playbackRate);
			var nextIndex = (currentIndex + 1) % speeds.length;
			video.playbackRate = speeds[nextIndex];
			post({ success: true, command: 'speed', playbackRate: video.playbackRate });`
	default:
		return `			post({ success: false, error: 'Unknown command' });`
	}
}

// Tokens are UUIDs in practice; stripping quote characters keeps a
// malformed caller value from breaking out of the script literal.
func sanitizeToken(token string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\'', '"', '\\', '\n', '\r':
			return -1
		}
		return r
	}, token)
}
