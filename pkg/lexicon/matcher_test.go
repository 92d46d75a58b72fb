package lexicon

import (
	"testing"

	"VoicePlay/internal/entity"
)

func TestMatchDefaultTables(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name      string
		utterance string
		locale    string
		want      entity.Command
	}{
		{"zh play", "請播放影片", "zh-TW", entity.CommandPlay},
		{"zh pause", "暫停一下", "zh-TW", entity.CommandPause},
		{"zh forward", "幫我快轉十秒", "zh-TW", entity.CommandForward10},
		{"zh backward thirty", "後退三十秒", "zh-TW", entity.CommandBackward30},
		{"zh fullscreen", "全螢幕", "zh-TW", entity.CommandFullscreen},
		{"zh mute shadows unmute", "取消靜音", "zh-TW", entity.CommandMute},
		{"en play", "please play the video", "en", entity.CommandPlay},
		{"en volume", "make it louder", "en", entity.CommandVolumeUp},
		{"en restart", "start over from the top", "en", entity.CommandPlay},
		{"ja pause", "一時停止して", "ja", entity.CommandPause},
		{"ko play", "재생해줘", "ko", entity.CommandPlay},
		{"es mute", "silenciar por favor", "es", entity.CommandMute},
		{"fr forward", "avancer un peu", "fr", entity.CommandForward10},
		{"de fullscreen", "vollbild bitte", "de", entity.CommandFullscreen},
		{"no match", "what a lovely day", "en", entity.CommandUnknown},
		{"empty utterance", "", "zh-TW", entity.CommandUnknown},
		{"whitespace only", "   ", "en", entity.CommandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.utterance, tt.locale); got != tt.want {
				t.Errorf("Match(%q, %q) = %q, want %q", tt.utterance, tt.locale, got, tt.want)
			}
		})
	}
}

func TestMatchOrderShadowing(t *testing.T) {
	m := NewMatcher()

	// 快轉 sits before 快轉三十秒 in the zh-TW table, so the longer
	// phrase can never win. Documented ambiguity policy.
	if got := m.Match("快轉三十秒", "zh-TW"); got != entity.CommandForward10 {
		t.Errorf("Match(快轉三十秒) = %q, want %q", got, entity.CommandForward10)
	}

	// Same for English: plain forward precedes forward thirty.
	if got := m.Match("forward thirty", "en"); got != entity.CommandForward10 {
		t.Errorf("Match(forward thirty) = %q, want %q", got, entity.CommandForward10)
	}
}

func TestMatchLocaleFallback(t *testing.T) {
	m := NewMatcher()

	// fr-CA has no exact table; the primary subtag does.
	if got := m.Match("avancer", "fr-CA"); got != entity.CommandForward10 {
		t.Errorf("Match(avancer, fr-CA) = %q, want %q", got, entity.CommandForward10)
	}

	// Neither pt-BR nor pt exists; English is the final fallback.
	if got := m.Match("pause", "pt-BR"); got != entity.CommandPause {
		t.Errorf("Match(pause, pt-BR) = %q, want %q", got, entity.CommandPause)
	}

	if got := m.Match("play", ""); got != entity.CommandPlay {
		t.Errorf("Match(play, empty locale) = %q, want %q", got, entity.CommandPlay)
	}
}

func TestMatchNormalization(t *testing.T) {
	m := NewMatcher()

	// NFKC folds full-width forms before lowercasing.
	if got := m.Match("ＰＬＡＹ ｔｈｅ ｖｉｄｅｏ", "en"); got != entity.CommandPlay {
		t.Errorf("Match(full-width play) = %q, want %q", got, entity.CommandPlay)
	}

	if got := m.Match("  PAUSE  ", "en"); got != entity.CommandPause {
		t.Errorf("Match(upper-case pause) = %q, want %q", got, entity.CommandPause)
	}
}

func TestDescribe(t *testing.T) {
	m := NewMatcher()

	if got := m.Describe(entity.CommandSpeed, "zh-TW"); got != "調整播放速度" {
		t.Errorf("Describe(speed, zh-TW) = %q", got)
	}

	if got := m.Describe(entity.CommandUnknown, "en"); got != "Unknown command" {
		t.Errorf("Describe(unknown, en) = %q", got)
	}

	// Description tables only cover zh-TW and en; everything else falls
	// back to the English labels.
	if got := m.Describe(entity.CommandPlay, "ja"); got != "Play video" {
		t.Errorf("Describe(play, ja) = %q", got)
	}

	for _, command := range entity.Commands {
		for _, locale := range []string{"zh-TW", "en", "ko", "de", "xx"} {
			if got := m.Describe(command, locale); got == "" {
				t.Errorf("Describe(%q, %q) returned empty label", command, locale)
			}
		}
	}
}

func TestDescribeMissingCommandFallsBackToUnknown(t *testing.T) {
	m := NewMatcherWithTables(
		map[string][]Trigger{"en": {{Phrase: "go", Command: entity.CommandPlay}}},
		map[string]map[entity.Command]string{
			"en": {
				entity.CommandPlay:    "Go",
				entity.CommandUnknown: "No idea",
			},
		},
	)

	if got := m.Describe(entity.CommandPause, "en"); got != "No idea" {
		t.Errorf("Describe(pause) = %q, want the unknown label", got)
	}
}

func TestMatchWithCustomTableOrder(t *testing.T) {
	m := NewMatcherWithTables(
		map[string][]Trigger{
			"en": {
				{Phrase: "stop", Command: entity.CommandPause},
				{Phrase: "stop everything", Command: entity.CommandRestart},
			},
		},
		nil,
	)

	// Both phrases are substrings, the earlier entry wins.
	if got := m.Match("stop everything now", "en"); got != entity.CommandPause {
		t.Errorf("Match(stop everything now) = %q, want %q", got, entity.CommandPause)
	}
}

func TestLocales(t *testing.T) {
	m := NewMatcher()

	locales := m.Locales()
	if len(locales) != 7 {
		t.Fatalf("Locales() returned %d entries, want 7", len(locales))
	}

	found := map[string]bool{}
	for _, locale := range locales {
		found[locale] = true
	}
	for _, want := range []string{"zh-TW", "en", "ja", "ko", "es", "fr", "de"} {
		if !found[want] {
			t.Errorf("Locales() missing %q", want)
		}
	}
}
