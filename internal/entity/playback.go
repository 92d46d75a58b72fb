package entity

import "time"

type Command string

const (
	CommandPlay           Command = "play"
	CommandPause          Command = "pause"
	CommandForward10      Command = "forward10"
	CommandBackward10     Command = "backward10"
	CommandForward30      Command = "forward30"
	CommandBackward30     Command = "backward30"
	CommandVolumeUp       Command = "volumeUp"
	CommandVolumeDown     Command = "volumeDown"
	CommandFullscreen     Command = "fullscreen"
	CommandExitFullscreen Command = "exitFullscreen"
	CommandRestart        Command = "restart"
	CommandSpeed          Command = "speed"
	CommandMute           Command = "mute"
	CommandUnmute         Command = "unmute"
	CommandUnknown        Command = "unknown"
)

// Commands lists every canonical command, CommandUnknown included.
// The vocabulary is closed; nothing is added at runtime.
var Commands = []Command{
	CommandPlay,
	CommandPause,
	CommandForward10,
	CommandBackward10,
	CommandForward30,
	CommandBackward30,
	CommandVolumeUp,
	CommandVolumeDown,
	CommandFullscreen,
	CommandExitFullscreen,
	CommandRestart,
	CommandSpeed,
	CommandMute,
	CommandUnmute,
	CommandUnknown,
}

func (c Command) String() string {
	return string(c)
}

func (c Command) IsKnown() bool {
	return c != CommandUnknown && c != ""
}

// PlaybackRates is the fixed multiplier cycle used by the speed command.
var PlaybackRates = []float64{0.5, 0.75, 1, 1.25, 1.5, 2}

type BackendKind string

const (
	BackendNative   BackendKind = "native"
	BackendEmbedded BackendKind = "embedded"
)

// PlaybackTarget is the classification of a playback locator. It is
// computed once when a session opens and never recomputed mid-session.
type PlaybackTarget struct {
	Locator     string      `json:"locator"`
	Backend     BackendKind `json:"backend"`
	DirectMedia bool        `json:"direct_media"`
}

type PlaybackSession struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Target    PlaybackTarget `json:"target"`
	CreatedAt time.Time      `json:"created_at"`
}

type VoiceAction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Command   string    `json:"command"`
	Locator   string    `json:"locator"`
	Success   bool      `json:"success"`
	CreatedAt time.Time `json:"created_at"`
}

// ExecutionReport is the message a remote script posts back through the
// embedded surface after it runs. It arrives out of band, after the
// dispatch call that injected the script has already returned.
type ExecutionReport struct {
	Token        string   `json:"token"`
	Success      bool     `json:"success"`
	Command      Command  `json:"command,omitempty"`
	CurrentTime  *float64 `json:"currentTime,omitempty"`
	Volume       *float64 `json:"volume,omitempty"`
	PlaybackRate *float64 `json:"playbackRate,omitempty"`
	Error        string   `json:"error,omitempty"`
}
