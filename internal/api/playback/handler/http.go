package playbackHandler

import (
	playbackService "VoicePlay/internal/api/playback/service"
	"VoicePlay/internal/middleware"
	surfacePkg "VoicePlay/pkg/surface"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PlaybackHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	playbackService playbackService.IPlaybackService
	surface         surfacePkg.IHub
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ps playbackService.IPlaybackService,
	surface surfacePkg.IHub,
) *PlaybackHandler {
	return &PlaybackHandler{
		log:             log,
		validator:       validate,
		middleware:      middleware,
		playbackService: ps,
		surface:         surface,
	}
}

func (h *PlaybackHandler) Start(srv fiber.Router) {
	playback := srv.Group("/playback")

	// All playback endpoints require authentication
	playback.Use(h.middleware.NewTokenMiddleware)

	// Session lifecycle
	playback.Post("/session", h.OpenSession)
	playback.Get("/session", h.GetSession)

	// Voice command dispatch
	playback.Post("/command", h.DispatchUtterance)

	// Action history and stats
	playback.Get("/actions", h.GetActionHistory)
	playback.Get("/actions/stats", h.GetActionStats)
	playback.Get("/last-action", h.GetLastAction)

	// Lexicon testing
	playback.Post("/lexicon/test", h.TestLexicon)

	// Embedded surface bridge
	playback.Get("/surface/ws", h.SurfaceUpgrade, h.SurfaceSocket())
}
