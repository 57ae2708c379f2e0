package relay

import (
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/service/presence"
	"github.com/cloudkitchen/cloudkitchen/service/ws"
)

type write struct {
	t      string
	body   interface{}
	target ws.TargetFunc
}

type streamerMock struct {
	writes chan write
}

func newStreamerMock() *streamerMock {
	return &streamerMock{writes: make(chan write, 16)}
}

func (s *streamerMock) WriteMessage(t string, body interface{}, targetFunc ws.TargetFunc) {
	s.writes <- write{t: t, body: body, target: targetFunc}
}

func (s *streamerMock) next(t *testing.T) write {
	t.Helper()
	select {
	case w := <-s.writes:
		return w
	case <-time.After(time.Second):
		require.FailNow(t, "timeout: no message written")
		return write{}
	}
}

type sessionMock struct {
	key    string
	roomID string
}

func (s *sessionMock) Key() string    { return s.key }
func (s *sessionMock) RoomID() string { return s.roomID }

var (
	adminSession = &sessionMock{key: "admin", roomID: ws.RoomAdmin}
	g1Session    = &sessionMock{key: "g1", roomID: "guest_g1"}
	g2Session    = &sessionMock{key: "g2", roomID: "guest_g2"}
)

func setup(t *testing.T) (*hub.Hub, *streamerMock) {
	t.Helper()
	h := hub.New()
	s := newStreamerMock()
	NewRelay(h, s, zap.NewNop())
	return h, s
}

func TestRelay_OrderCreated(t *testing.T) {
	t.Parallel()

	h, s := setup(t)
	order := &model.Order{ID: uuid.Must(uuid.NewV4()), UserID: "guest_g1"}
	h.Publish(hub.Message{
		Name:   event.OrderCreated,
		Fields: hub.Fields{"order": order},
	})

	// 新規注文は管理ルームのみに届く。注文主のゲストルームには届かない
	w := s.next(t)
	assert.Equal(t, ws.MessageTypeNewOrder, w.t)
	assert.Equal(t, order, w.body)
	assert.True(t, w.target(adminSession))
	assert.False(t, w.target(g1Session))
	assert.False(t, w.target(g2Session))
}

func TestRelay_OrderUpdated(t *testing.T) {
	t.Parallel()

	h, s := setup(t)
	order := &model.Order{ID: uuid.Must(uuid.NewV4()), UserID: "guest_g1", Status: model.OrderStatusAccepted}
	h.Publish(hub.Message{
		Name:   event.OrderUpdated,
		Fields: hub.Fields{"order": order},
	})

	// 注文主のゲストルームと管理ルームの両方に届く
	w := s.next(t)
	assert.Equal(t, ws.MessageTypeOrderStatusUpdated, w.t)
	assert.Equal(t, order, w.body)
	assert.True(t, w.target(g1Session))
	assert.False(t, w.target(g2Session))
	assert.False(t, w.target(adminSession))

	w = s.next(t)
	assert.Equal(t, ws.MessageTypeAdminOrderUpdate, w.t)
	assert.Equal(t, order, w.body)
	assert.True(t, w.target(adminSession))
	assert.False(t, w.target(g1Session))
}

func TestRelay_OrderDeleted(t *testing.T) {
	t.Parallel()

	h, s := setup(t)
	id := uuid.Must(uuid.NewV4())
	h.Publish(hub.Message{
		Name:   event.OrderDeleted,
		Fields: hub.Fields{"order_id": id},
	})

	w := s.next(t)
	assert.Equal(t, ws.MessageTypeOrderDeleted, w.t)
	assert.Equal(t, id.String(), w.body)
	assert.True(t, w.target(adminSession))
	assert.False(t, w.target(g1Session))
}

func TestRelay_FoodEvents(t *testing.T) {
	t.Parallel()

	h, s := setup(t)
	food := &model.Food{ID: uuid.Must(uuid.NewV4()), Name: "Margherita"}

	h.Publish(hub.Message{Name: event.FoodCreated, Fields: hub.Fields{"food": food}})
	w := s.next(t)
	assert.Equal(t, ws.MessageTypeFoodAdded, w.t)
	assert.True(t, w.target(adminSession))
	assert.True(t, w.target(g1Session))

	h.Publish(hub.Message{Name: event.FoodDeleted, Fields: hub.Fields{"food_id": food.ID}})
	w = s.next(t)
	assert.Equal(t, ws.MessageTypeFoodDeleted, w.t)
	assert.Equal(t, food.ID.String(), w.body)
	assert.True(t, w.target(g2Session))
}

func TestRelay_KitchenStatusChanged(t *testing.T) {
	t.Parallel()

	h, s := setup(t)
	h.Publish(hub.Message{
		Name:   event.KitchenStatusChanged,
		Fields: hub.Fields{"is_open": false},
	})

	w := s.next(t)
	assert.Equal(t, ws.MessageTypeKitchenStatusChanged, w.t)
	assert.Equal(t, false, w.body)
	assert.True(t, w.target(g1Session))
	assert.True(t, w.target(adminSession))
}

func TestRelay_MetricsUpdated(t *testing.T) {
	t.Parallel()

	h, s := setup(t)
	m := presence.Metrics{ActiveCustomers: 3, TotalVisitorsToday: 42}
	h.Publish(hub.Message{
		Name:   event.MetricsUpdated,
		Fields: hub.Fields{"metrics": m},
	})

	// ライブメトリクスは管理ルーム限定
	w := s.next(t)
	assert.Equal(t, ws.MessageTypeLiveMetrics, w.t)
	assert.Equal(t, m, w.body)
	assert.True(t, w.target(adminSession))
	assert.False(t, w.target(g1Session))
	assert.False(t, w.target(g2Session))
}
