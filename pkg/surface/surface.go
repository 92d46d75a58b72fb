package surfacePkg

import (
	"fmt"
	"sync"
	"time"

	"VoicePlay/internal/entity"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// ReportHandler receives execution reports as they arrive from the
// surface. Delivery is best effort: reports for scripts whose pending
// entry already expired are still handed over and the handler decides
// what to do with them.
type ReportHandler func(report entity.ExecutionReport)

// IHub is the executor side of the embedded surface. The device's
// WebView bridge attaches over the surface WebSocket endpoint; scripts
// are pushed down that socket and whatever the injected code posts back
// through the page bridge is relayed up as execution reports.
type IHub interface {
	ExecuteScript(script string) error
	SetReportHandler(handler ReportHandler)
	Attach(conn *websocket.Conn)
	IsAttached() bool
}

type hub struct {
	mu           sync.Mutex
	conn         *websocket.Conn
	handler      ReportHandler
	log          *logrus.Logger
	writeTimeout time.Duration
}

func NewHub(log *logrus.Logger) IHub {
	return &hub{
		log:          log,
		writeTimeout: 5 * time.Second,
	}
}

func (h *hub) SetReportHandler(handler ReportHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handler = handler
}

func (h *hub) IsAttached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.conn != nil
}

// ExecuteScript is fire and forget: the script is handed to the surface
// and the call returns. The outcome, if any, arrives later through the
// report handler.
func (h *hub) ExecuteScript(script string) error {
	h.mu.Lock()
	conn := h.conn
	h.mu.Unlock()

	if conn == nil {
		return fmt.Errorf("no surface attached")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, []byte(script)); err != nil {
		h.conn = nil
		conn.Close()
		return fmt.Errorf("error sending script to surface: %w", err)
	}
	conn.SetWriteDeadline(time.Time{})

	return nil
}

// Attach takes over the connection and blocks on its read loop until the
// surface goes away. At most one surface is live at a time; a new one
// replaces the previous connection.
func (h *hub) Attach(conn *websocket.Conn) {
	h.mu.Lock()
	if h.conn != nil {
		h.conn.Close()
	}
	h.conn = conn
	h.mu.Unlock()

	h.log.Info("Embedded surface attached")
	h.readLoop(conn)
}

func (h *hub) readLoop(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		if h.conn == conn {
			h.conn = nil
		}
		h.mu.Unlock()
		conn.Close()
		h.log.Info("Embedded surface detached")
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var report entity.ExecutionReport
		if err := jsoniter.Unmarshal(message, &report); err != nil {
			h.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Discarding malformed execution report")
			continue
		}

		h.mu.Lock()
		handler := h.handler
		h.mu.Unlock()

		if handler != nil {
			handler(report)
		}
	}
}
