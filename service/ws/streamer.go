package ws

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/leandro-lugaresi/hub"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/service/presence"
	"github.com/cloudkitchen/cloudkitchen/service/visitor"
	"github.com/cloudkitchen/cloudkitchen/utils/random"
)

var (
	// ErrAlreadyClosed 既に閉じられています
	ErrAlreadyClosed = errors.New("already closed")
	// ErrBufferIsFull 送信バッファが溢れました
	ErrBufferIsFull = errors.New("buffer is full")
)

var wsConnectionsGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "cloudkitchen",
	Name:      "ws_connections",
})

// Streamer WebSocketストリーマー
type Streamer struct {
	hub        *hub.Hub
	presence   *presence.Tracker
	visitors   *visitor.Counter
	adminToken string
	logger     *zap.Logger
	sessions   map[*session]struct{}
	closed     bool
	mu         sync.RWMutex
}

// NewStreamer WebSocketストリーマーを生成します
//
// adminTokenが空でない場合、管理ルームへの参加時にトークンを検証します
func NewStreamer(hub *hub.Hub, presence *presence.Tracker, visitors *visitor.Counter, adminToken string, logger *zap.Logger) *Streamer {
	return &Streamer{
		hub:        hub,
		presence:   presence,
		visitors:   visitors,
		adminToken: adminToken,
		logger:     logger.Named("ws"),
		sessions:   make(map[*session]struct{}),
		closed:     false,
	}
}

func (s *Streamer) register(session *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session] = struct{}{}
	wsConnectionsGauge.Set(float64(len(s.sessions)))
}

func (s *Streamer) unregister(session *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, session)
	wsConnectionsGauge.Set(float64(len(s.sessions)))
}

// IterateSessions 全セッションをイテレートします
func (s *Streamer) IterateSessions(f func(session Session)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for session := range s.sessions {
		f(session)
	}
}

// WriteMessage 対象のセッションにメッセージを書き込みます
//
// 送信はfire-and-forgetで、対象が0件の場合は何もしない
func (s *Streamer) WriteMessage(t string, body interface{}, targetFunc TargetFunc) {
	m := &rawMessage{
		t:    websocket.TextMessage,
		data: makeMessage(t, body).toJSON(),
	}
	s.mu.RLock()
	for session := range s.sessions {
		if targetFunc(session) {
			if err := session.writeMessage(m); err != nil {
				if err == ErrBufferIsFull {
					s.logger.Warn("Discard a message because the session's buffer is full.",
						zap.String("type", t), zap.Any("body", body),
						zap.String("connKey", session.key))
					continue
				}
			}
		}
	}
	s.mu.RUnlock()
}

// joinRoom セッションをルームに所属させ、参加時の副作用を発火します
func (s *Streamer) joinRoom(sess *session, req JoinRoomRequest) {
	if req.RoomID == RoomAdmin && len(s.adminToken) > 0 && req.Token != s.adminToken {
		s.logger.Warn("admin room join rejected", zap.String("connKey", sess.key))
		sess.sendErrorMessage("invalid admin token")
		return
	}

	sess.setRoom(req.RoomID)
	s.hub.Publish(hub.Message{
		Name: event.WSRoomJoined,
		Fields: hub.Fields{
			"conn_key": sess.key,
			"room_id":  req.RoomID,
		},
	})

	switch {
	case IsGuestRoom(req.RoomID):
		s.visitors.Record(sess.key)
		s.presence.Touch(sess.key)
	case req.RoomID == RoomAdmin:
		// 後から参加したダッシュボードが空にならないよう、即時スナップショットを送る
		_ = sess.writeMessage(&rawMessage{
			t:    websocket.TextMessage,
			data: makeMessage(MessageTypeLiveMetrics, s.presence.Metrics()).toJSON(),
		})
	}
}

// ServeHTTP http.Handlerインターフェイスの実装
func (s *Streamer) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	if s.closed {
		http.Error(rw, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		s.mu.RUnlock()
		return
	}
	s.mu.RUnlock()

	conn, err := upgrader.Upgrade(rw, r, rw.Header())
	if err != nil {
		return
	}

	session := &session{
		key:      random.AlphaNumeric(20),
		req:      r,
		conn:     conn,
		open:     true,
		streamer: s,
		send:     make(chan *rawMessage, messageBufferSize),
	}

	s.register(session)
	s.hub.Publish(hub.Message{
		Name: event.WSConnected,
		Fields: hub.Fields{
			"conn_key": session.key,
			"req":      r,
		},
	})

	go session.writeLoop()
	session.readLoop()

	// 切断は無条件にアクティブ集合から削除する
	s.presence.Remove(session.key)
	s.hub.Publish(hub.Message{
		Name: event.WSDisconnected,
		Fields: hub.Fields{
			"conn_key": session.key,
			"req":      r,
		},
	})
	s.unregister(session)
	session.close()
}

// Close ストリーマーを停止します
func (s *Streamer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrAlreadyClosed
	}
	s.closed = true

	m := &rawMessage{
		t:    websocket.CloseMessage,
		data: websocket.FormatCloseMessage(websocket.CloseServiceRestart, "Server is stopping..."),
	}
	for session := range s.sessions {
		_ = session.writeMessage(m)
		session.close()
	}
	s.sessions = make(map[*session]struct{})
	return nil
}
