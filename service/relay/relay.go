package relay

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/service/presence"
	"github.com/cloudkitchen/cloudkitchen/service/ws"
)

// Streamer メッセージ送信先
type Streamer interface {
	WriteMessage(t string, body interface{}, targetFunc ws.TargetFunc)
}

// Relay 注文イベントリレー
//
// 永続化レイヤーが発行するドメインイベントを購読し、
// ルームスコープ付きのWebSocketメッセージに変換します。
// 変換は純粋で、対象ルームが空の場合は何も起きない
type Relay struct {
	streamer Streamer
	logger   *zap.Logger
}

// NewRelay 注文イベントリレーを生成し購読を開始します
func NewRelay(h *hub.Hub, streamer Streamer, logger *zap.Logger) *Relay {
	r := &Relay{
		streamer: streamer,
		logger:   logger.Named("relay"),
	}
	topics := []string{
		event.OrderCreated,
		event.OrderUpdated,
		event.OrderDeleted,
		event.FoodCreated,
		event.FoodUpdated,
		event.FoodDeleted,
		event.KitchenStatusChanged,
		event.MetricsUpdated,
	}
	sub := h.Subscribe(16, topics...)
	go func() {
		for e := range sub.Receiver {
			r.dispatch(e)
		}
	}()
	return r
}

func (r *Relay) dispatch(e hub.Message) {
	switch e.Topic() {
	case event.OrderCreated:
		order := e.Fields["order"].(*model.Order)
		r.streamer.WriteMessage(ws.MessageTypeNewOrder, order, ws.TargetAdmins())

	case event.OrderUpdated:
		order := e.Fields["order"].(*model.Order)
		r.streamer.WriteMessage(ws.MessageTypeOrderStatusUpdated, order, ws.TargetRoom(order.UserID))
		r.streamer.WriteMessage(ws.MessageTypeAdminOrderUpdate, order, ws.TargetAdmins())

	case event.OrderDeleted:
		orderID := e.Fields["order_id"].(uuid.UUID)
		r.streamer.WriteMessage(ws.MessageTypeOrderDeleted, orderID.String(), ws.TargetAdmins())

	case event.FoodCreated:
		food := e.Fields["food"].(*model.Food)
		r.streamer.WriteMessage(ws.MessageTypeFoodAdded, food, ws.TargetAll())

	case event.FoodUpdated:
		food := e.Fields["food"].(*model.Food)
		r.streamer.WriteMessage(ws.MessageTypeFoodUpdated, food, ws.TargetAll())

	case event.FoodDeleted:
		foodID := e.Fields["food_id"].(uuid.UUID)
		r.streamer.WriteMessage(ws.MessageTypeFoodDeleted, foodID.String(), ws.TargetAll())

	case event.KitchenStatusChanged:
		isOpen := e.Fields["is_open"].(bool)
		r.streamer.WriteMessage(ws.MessageTypeKitchenStatusChanged, isOpen, ws.TargetAll())

	case event.MetricsUpdated:
		metrics := e.Fields["metrics"].(presence.Metrics)
		r.streamer.WriteMessage(ws.MessageTypeLiveMetrics, metrics, ws.TargetAdmins())
	}
}
