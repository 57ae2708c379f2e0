package ws

import (
	"sync"
	"testing"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
	"github.com/cloudkitchen/cloudkitchen/service/presence"
	"github.com/cloudkitchen/cloudkitchen/service/visitor"
)

type statsRepoMock struct {
	mu       sync.Mutex
	visitors map[string]int
}

func newStatsRepoMock() *statsRepoMock {
	return &statsRepoMock{visitors: map[string]int{}}
}

func (m *statsRepoMock) IncrementDailyVisitors(date string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visitors[date]++
	return nil
}

func (m *statsRepoMock) IncrementTotalOrders(string) error { return nil }

func (m *statsRepoMock) GetStats(date string) (*model.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.visitors[date]; !ok {
		return nil, repository.ErrNotFound
	}
	return &model.Stats{Date: date, DailyVisitors: m.visitors[date]}, nil
}

func (m *statsRepoMock) count(date string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visitors[date]
}

func setupStreamer(t *testing.T, adminToken string) (*Streamer, *hub.Hub, *statsRepoMock) {
	t.Helper()
	h := hub.New()
	repo := newStatsRepoMock()
	visitors := visitor.NewCounter(repo, zap.NewNop())
	tracker := presence.NewTracker(h, repo, visitors, zap.NewNop())
	return NewStreamer(h, tracker, visitors, adminToken, zap.NewNop()), h, repo
}

func newTestSession(key string) *session {
	return &session{
		key:  key,
		open: true,
		send: make(chan *rawMessage, messageBufferSize),
	}
}

// receiveFrame セッションの送信バッファから1フレーム取り出してデコードする
func receiveFrame(t *testing.T, sess *session) inMessage {
	t.Helper()
	select {
	case raw := <-sess.send:
		var m inMessage
		require.NoError(t, json.Unmarshal(raw.data, &m))
		return m
	default:
		require.FailNow(t, "no frame in send buffer")
		return inMessage{}
	}
}

func TestStreamer_JoinRoomGuest(t *testing.T) {
	t.Parallel()

	s, h, repo := setupStreamer(t, "")
	sub := h.Subscribe(10, event.WSRoomJoined)
	sess := newTestSession("conn1")

	s.joinRoom(sess, JoinRoomRequest{RoomID: "guest_g1"})

	assert.Equal(t, "guest_g1", sess.RoomID())
	assert.Equal(t, 1, s.presence.Count())
	assert.Equal(t, 1, repo.count(model.DateKey(time.Now())))
	assert.Empty(t, sess.send)

	select {
	case msg := <-sub.Receiver:
		assert.Equal(t, "conn1", msg.Fields["conn_key"])
		assert.Equal(t, "guest_g1", msg.Fields["room_id"])
	case <-time.After(time.Second):
		require.FailNow(t, "timeout: no room joined event")
	}
}

func TestStreamer_JoinRoomGuestRejoin(t *testing.T) {
	t.Parallel()

	s, _, _ := setupStreamer(t, "")
	sess := newTestSession("conn1")

	// 再参加は前の所属を置き換える
	s.joinRoom(sess, JoinRoomRequest{RoomID: "guest_g1"})
	s.joinRoom(sess, JoinRoomRequest{RoomID: "guest_g2"})
	assert.Equal(t, "guest_g2", sess.RoomID())
	assert.Equal(t, 1, s.presence.Count())
}

func TestStreamer_JoinRoomAdminSnapshot(t *testing.T) {
	t.Parallel()

	s, _, _ := setupStreamer(t, "")
	s.presence.Touch("guest-conn")
	sess := newTestSession("admin1")

	s.joinRoom(sess, JoinRoomRequest{RoomID: RoomAdmin})

	assert.Equal(t, RoomAdmin, sess.RoomID())

	// 後から参加したダッシュボードには即時スナップショットが届く
	frame := receiveFrame(t, sess)
	assert.Equal(t, MessageTypeLiveMetrics, frame.Type)
	var m presence.Metrics
	require.NoError(t, json.Unmarshal(frame.Body, &m))
	assert.Equal(t, 1, m.ActiveCustomers)
}

func TestStreamer_JoinRoomAdminToken(t *testing.T) {
	t.Parallel()

	s, _, repo := setupStreamer(t, "secret")

	t.Run("mismatch", func(t *testing.T) {
		sess := newTestSession("bad")
		s.joinRoom(sess, JoinRoomRequest{RoomID: RoomAdmin, Token: "wrong"})

		// 参加は拒否され、セッションはルーム未所属のままERRORが返る
		assert.Equal(t, "", sess.RoomID())
		frame := receiveFrame(t, sess)
		assert.Equal(t, MessageTypeError, frame.Type)
	})

	t.Run("match", func(t *testing.T) {
		sess := newTestSession("good")
		s.joinRoom(sess, JoinRoomRequest{RoomID: RoomAdmin, Token: "secret"})

		assert.Equal(t, RoomAdmin, sess.RoomID())
		frame := receiveFrame(t, sess)
		assert.Equal(t, MessageTypeLiveMetrics, frame.Type)
	})

	// 管理ルーム参加はゲスト系の副作用を発火しない
	assert.Equal(t, 0, s.presence.Count())
	assert.Equal(t, 0, repo.count(model.DateKey(time.Now())))
}

func TestStreamer_JoinRoomUnknown(t *testing.T) {
	t.Parallel()

	s, _, repo := setupStreamer(t, "")
	sess := newTestSession("conn1")

	// 未知のルーム名は孤立ルームとして受け入れ、副作用は無し
	s.joinRoom(sess, JoinRoomRequest{RoomID: "lobby"})
	assert.Equal(t, "lobby", sess.RoomID())
	assert.Equal(t, 0, s.presence.Count())
	assert.Equal(t, 0, repo.count(model.DateKey(time.Now())))
	assert.Empty(t, sess.send)
}
