package inject

import (
	"strings"
	"testing"

	"VoicePlay/internal/entity"
)

func TestGenerateCoversEveryCommand(t *testing.T) {
	g := NewGenerator()

	for _, command := range entity.Commands {
		script := g.Generate(command, "token-1")
		if strings.TrimSpace(script) == "" {
			t.Errorf("Generate(%q) returned an empty script", command)
		}
		if !strings.Contains(script, "token-1") {
			t.Errorf("Generate(%q) script does not embed the token", command)
		}
		if !strings.Contains(script, "post(") {
			t.Errorf("Generate(%q) script never posts a report", command)
		}
	}
}

func TestGeneratePlayScript(t *testing.T) {
	g := NewGenerator()
	script := g.Generate(entity.CommandPlay, "tok")

	if !strings.Contains(script, "document.querySelector('video')") {
		t.Error("play script does not locate the video element")
	}
	if !strings.Contains(script, "No video element found") {
		t.Error("play script is missing the no-video failure branch")
	}
	if !strings.Contains(script, "video.play()") {
		t.Error("play script does not call play")
	}
	if !strings.Contains(script, "window.ReactNativeWebView.postMessage") {
		t.Error("play script does not use the WebView bridge")
	}
}

func TestGenerateSpeedCycle(t *testing.T) {
	g := NewGenerator()
	script := g.Generate(entity.CommandSpeed, "tok")

	if !strings.Contains(script, "[0.5, 0.75, 1, 1.25, 1.5, 2]") {
		t.Error("speed script does not carry the fixed rate cycle")
	}
	// indexOf of a foreign rate is -1, which advances to the first
	// entry; the script must keep that exact arithmetic.
	if !strings.Contains(script, "speeds.indexOf(video.playbackRate)") {
		t.Error("speed script does not look up the current rate")
	}
	if !strings.Contains(script, "(currentIndex + 1) % speeds.length") {
		t.Error("speed script lost the wraparound arithmetic")
	}
}

func TestGenerateExitFullscreenActsOnDocument(t *testing.T) {
	g := NewGenerator()
	script := g.Generate(entity.CommandExitFullscreen, "tok")

	if strings.Contains(script, "querySelector") {
		t.Error("exitFullscreen script should not depend on the video element")
	}
	if !strings.Contains(script, "document.exitFullscreen") {
		t.Error("exitFullscreen script does not use the document exit path")
	}
	if !strings.Contains(script, "webkitExitFullscreen") {
		t.Error("exitFullscreen script is missing the vendor fallback chain")
	}
}

func TestGenerateUnknownReportsFailure(t *testing.T) {
	g := NewGenerator()
	script := g.Generate(entity.CommandUnknown, "tok")

	if !strings.Contains(script, "success: false") {
		t.Error("unknown script must post a failure report")
	}
	if !strings.Contains(script, "Unknown command") {
		t.Error("unknown script is missing its error reason")
	}
}

func TestGenerateSanitizesToken(t *testing.T) {
	g := NewGenerator()
	script := g.Generate(entity.CommandPlay, `tok'en"\`+"\n")

	if !strings.Contains(script, "'token'") {
		t.Error("quote characters were not stripped from the token")
	}
}
