package playerPkg

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// IPlayer is the control surface of the native player bridge running on
// the user's device. Positions are in milliseconds.
type IPlayer interface {
	Play() error
	Pause() error
	GetPosition() (int64, error)
	SetPosition(positionMS int64) error
	IsConnected() bool
	Reconnect() error
	Close()
}

type bridgeRequest struct {
	Op         string `json:"op"`
	PositionMS int64  `json:"position_ms,omitempty"`
}

type bridgeResponse struct {
	OK         bool   `json:"ok"`
	PositionMS int64  `json:"position_ms"`
	Error      string `json:"error,omitempty"`
}

type playerClient struct {
	conn         *websocket.Conn
	mu           sync.Mutex
	log          *logrus.Logger
	pingInterval time.Duration
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func New(log *logrus.Logger) IPlayer {
	client := &playerClient{
		log:          log,
		pingInterval: 30 * time.Second,
		readTimeout:  10 * time.Second,
		writeTimeout: 5 * time.Second,
	}

	go func() {
		if err := client.Reconnect(); err != nil {
			log.Warnf("Initial connection to player bridge failed: %v. Will retry on demand.", err)
		} else {
			log.Info("Connected to player bridge")
		}
	}()

	return client
}

func (c *playerClient) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *playerClient) Reconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}

	url := os.Getenv("PLAYER_BRIDGE_URL")
	if url == "" {
		url = "ws://localhost:9100/bridge/ws"
	}

	dialer := websocket.DefaultDialer
	dialer.HandshakeTimeout = 10 * time.Second

	conn, _, err := dialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to player bridge at %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(c.writeTimeout))
	})

	c.conn = conn
	go c.keepAlive()

	return nil
}

func (c *playerClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		c.conn.Close()
		c.conn = nil
	}
}

func (c *playerClient) keepAlive() {
	ticker := time.NewTicker(c.pingInterval)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		conn := c.conn
		if conn == nil {
			c.mu.Unlock()
			return
		}

		err := conn.WriteControl(websocket.PingMessage, []byte{}, time.Now().Add(c.writeTimeout))
		if err != nil {
			c.log.Warnf("Ping to player bridge failed, marking connection as dead: %v", err)
			c.conn = nil
			conn.Close()
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

func (c *playerClient) Play() error {
	_, err := c.roundTrip(bridgeRequest{Op: "play"})
	return err
}

func (c *playerClient) Pause() error {
	_, err := c.roundTrip(bridgeRequest{Op: "pause"})
	return err
}

func (c *playerClient) GetPosition() (int64, error) {
	resp, err := c.roundTrip(bridgeRequest{Op: "getPosition"})
	if err != nil {
		return 0, err
	}
	return resp.PositionMS, nil
}

func (c *playerClient) SetPosition(positionMS int64) error {
	_, err := c.roundTrip(bridgeRequest{Op: "setPosition", PositionMS: positionMS})
	return err
}

// roundTrip sends one request and reads the matching response. The
// bridge answers in order on a single connection, so a write/read pair
// under the connection lock is enough.
func (c *playerClient) roundTrip(req bridgeRequest) (*bridgeResponse, error) {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()

	if conn == nil {
		if err := c.Reconnect(); err != nil {
			return nil, fmt.Errorf("player bridge unavailable: %w", err)
		}
		c.mu.Lock()
		conn = c.conn
		c.mu.Unlock()
		if conn == nil {
			return nil, fmt.Errorf("player bridge unavailable")
		}
	}

	c.mu.Lock()
	conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	if err := conn.WriteJSON(req); err != nil {
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error sending %s to player bridge: %w", req.Op, err)
	}
	conn.SetReadDeadline(time.Now().Add(c.readTimeout))
	c.mu.Unlock()

	_, message, err := conn.ReadMessage()
	if err != nil {
		c.mu.Lock()
		c.conn = nil
		conn.Close()
		c.mu.Unlock()
		return nil, fmt.Errorf("error reading %s response from player bridge: %w", req.Op, err)
	}

	c.mu.Lock()
	conn.SetReadDeadline(time.Time{})
	conn.SetWriteDeadline(time.Time{})
	c.mu.Unlock()

	var resp bridgeResponse
	if err := json.Unmarshal(message, &resp); err != nil {
		return nil, fmt.Errorf("error unmarshaling player bridge response: %w", err)
	}

	if !resp.OK {
		return &resp, fmt.Errorf("player bridge rejected %s: %s", req.Op, resp.Error)
	}

	return &resp, nil
}
