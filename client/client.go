// Package client ストアフロント・管理ダッシュボードが使用する
// WebSocketクライアント実装です。
package client

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/service/ws"
)

var json = jsoniter.ConfigFastest

const (
	// heartbeatInterval ハートビート送信間隔
	heartbeatInterval = 30 * time.Second
	// reconnectDelay 再接続試行間隔
	reconnectDelay = time.Second
	// maxReconnectAttempts 再接続試行回数上限
	maxReconnectAttempts = 5
	// writeWait 書き込みタイムアウト
	writeWait = 10 * time.Second
)

// ErrClosed クライアントは閉じられています
var ErrClosed = errors.New("client: closed")

// Handler 受信メッセージのボディを処理する関数
type Handler func(body jsoniter.RawMessage)

type message struct {
	Type string              `json:"type"`
	Body jsoniter.RawMessage `json:"body"`
}

// Client 再接続・ハートビート機能付きWebSocketクライアント
type Client struct {
	url      string
	logger   *zap.Logger
	dialer   *websocket.Dialer
	handlers map[string][]Handler

	mu     sync.Mutex
	conn   *websocket.Conn
	joined *ws.JoinRoomRequest
	closed bool
	done   chan struct{}
}

func New(url string, logger *zap.Logger) *Client {
	return &Client{
		url:      url,
		logger:   logger.Named("ws_client"),
		dialer:   websocket.DefaultDialer,
		handlers: map[string][]Handler{},
		done:     make(chan struct{}),
	}
}

// On メッセージタイプ毎の受信関数を登録します。Connect前に呼ぶこと
func (c *Client) On(messageType string, h Handler) {
	c.handlers[messageType] = append(c.handlers[messageType], h)
}

// Connect サーバーへ接続し、受信ループとハートビートを開始します
func (c *Client) Connect() error {
	conn, _, err := c.dialer.Dial(c.url, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	go c.readLoop(conn)
	go c.heartbeatLoop()
	return nil
}

// Close 接続を閉じます。以降の再接続は行われません
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	close(c.done)
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// JoinRoom ルームへ参加します。再接続時には自動で再参加されます
func (c *Client) JoinRoom(roomID, token string) error {
	c.mu.Lock()
	c.joined = &ws.JoinRoomRequest{RoomID: roomID, Token: token}
	c.mu.Unlock()
	return c.send(ws.MessageTypeJoinRoom, ws.JoinRoomRequest{RoomID: roomID, Token: token})
}

// Touch ハートビートを即時送信します
func (c *Client) Touch() error {
	return c.send(ws.MessageTypeUserActivity, nil)
}

func (c *Client) send(t string, body interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.conn == nil {
		return errors.New("client: not connected")
	}

	b, err := json.Marshal(map[string]interface{}{"type": t, "body": body})
	if err != nil {
		return err
	}
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if !closed {
				c.logger.Info("connection lost", zap.Error(err))
				c.reconnect()
			}
			return
		}
		c.dispatch(data)
	}
}

func (c *Client) dispatch(data []byte) {
	var m message
	if err := json.Unmarshal(data, &m); err != nil {
		c.logger.Debug("invalid message", zap.Error(err))
		return
	}
	for _, h := range c.handlers[m.Type] {
		h(m.Body)
	}
}

func (c *Client) heartbeatLoop() {
	t := time.NewTicker(heartbeatInterval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			if err := c.Touch(); err != nil && err != ErrClosed {
				c.logger.Debug("heartbeat failed", zap.Error(err))
			}
		}
	}
}

// reconnect 切断後に再接続を試みます。上限回数を超えた場合は諦めます
func (c *Client) reconnect() {
	for i := 1; i <= maxReconnectAttempts; i++ {
		select {
		case <-c.done:
			return
		case <-time.After(reconnectDelay):
		}

		conn, _, err := c.dialer.Dial(c.url, nil)
		if err != nil {
			c.logger.Info("reconnect failed", zap.Int("attempt", i), zap.Error(err))
			continue
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			conn.Close()
			return
		}
		c.conn = conn
		joined := c.joined
		c.mu.Unlock()

		go c.readLoop(conn)

		// 切断前のルームへ再参加
		if joined != nil {
			if err := c.send(ws.MessageTypeJoinRoom, *joined); err != nil {
				c.logger.Warn("failed to rejoin room", zap.Error(err))
			}
		}
		c.logger.Info("reconnected", zap.Int("attempt", i))
		return
	}
	c.logger.Error("gave up reconnecting")
}
