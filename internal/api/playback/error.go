package playback

import "VoicePlay/pkg/response"

var (
	ErrInvalidLocator     = response.NewError(400, "invalid playback locator")
	ErrSessionNotFound    = response.NewError(404, "no active playback session")
	ErrSessionOpenFailed  = response.NewError(500, "failed to open playback session")
	ErrActionQueryFailed  = response.NewError(500, "failed to load voice actions")
	ErrSurfaceNotAttached = response.NewError(409, "no embedded surface attached")
)
