package playbackHandler

import (
	"VoicePlay/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// SurfaceUpgrade gates the surface endpoint to WebSocket upgrade
// requests. Plain HTTP hits get 426 from fiber's upgrade check.
func (h *PlaybackHandler) SurfaceUpgrade(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SurfaceSocket hands the upgraded connection to the surface hub, which
// owns it until the device detaches.
func (h *PlaybackHandler) SurfaceSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		h.log.WithFields(log.Fields{
			"remote": conn.RemoteAddr().String(),
		}).Info("Surface WebSocket connected")

		h.surface.Attach(conn)
	})
}
