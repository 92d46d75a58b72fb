package playback

import (
	"time"

	"VoicePlay/internal/entity"
)

type OpenSessionRequest struct {
	URL string `json:"url" validate:"required"`
}

type SessionResponse struct {
	SessionID   string             `json:"session_id,omitempty"`
	URL         string             `json:"url"`
	Backend     entity.BackendKind `json:"backend"`
	DirectMedia bool               `json:"direct_media"`
	Hostname    string             `json:"hostname,omitempty"`
}

type UtteranceRequest struct {
	Text   string `json:"text" validate:"required"`
	Locale string `json:"locale"`
}

type DispatchResponse struct {
	Command    entity.Command     `json:"command"`
	Label      string             `json:"label"`
	Backend    entity.BackendKind `json:"backend"`
	Dispatched bool               `json:"dispatched"`
	PositionMS *int64             `json:"position_ms,omitempty"`
}

type LexiconTestRequest struct {
	Text   string `json:"text" validate:"required"`
	Locale string `json:"locale"`
}

type LexiconTestResponse struct {
	Input   string         `json:"input"`
	Locale  string         `json:"locale"`
	Command entity.Command `json:"command"`
	Label   string         `json:"label"`
}

type ActionStats struct {
	Today       int `json:"today"`
	ThisMonth   int `json:"this_month"`
	Total       int `json:"total"`
	SuccessRate int `json:"success_rate"`
}

type LastAction struct {
	Command entity.Command `json:"command"`
	Label   string         `json:"label"`
	At      time.Time      `json:"at"`
}
