package ws

import (
	jsoniter "github.com/json-iterator/go"
)

// サーバー→クライアントのメッセージタイプ
const (
	// MessageTypeNewOrder 新規注文 (管理ルーム宛)
	MessageTypeNewOrder = "new-order"
	// MessageTypeOrderStatusUpdated 注文ステータス更新 (ゲストルーム宛)
	MessageTypeOrderStatusUpdated = "order-status-updated"
	// MessageTypeAdminOrderUpdate 注文ステータス更新 (管理ルーム宛)
	MessageTypeAdminOrderUpdate = "admin-order-update"
	// MessageTypeOrderDeleted 注文削除 (管理ルーム宛)
	MessageTypeOrderDeleted = "order-deleted"
	// MessageTypeFoodAdded メニュー追加 (全コネクション宛)
	MessageTypeFoodAdded = "food-added"
	// MessageTypeFoodUpdated メニュー更新 (全コネクション宛)
	MessageTypeFoodUpdated = "food-updated"
	// MessageTypeFoodDeleted メニュー削除 (全コネクション宛)
	MessageTypeFoodDeleted = "food-deleted"
	// MessageTypeKitchenStatusChanged キッチン営業状態切り替え (全コネクション宛)
	MessageTypeKitchenStatusChanged = "kitchen-status-changed"
	// MessageTypeLiveMetrics ライブメトリクス (管理ルーム宛)
	MessageTypeLiveMetrics = "live-metrics"
	// MessageTypeError エラー通知
	MessageTypeError = "ERROR"
)

// クライアント→サーバーのメッセージタイプ
const (
	// MessageTypeJoinRoom ルーム参加リクエスト
	MessageTypeJoinRoom = "join-room"
	// MessageTypeUserActivity ハートビート (ペイロード無し)
	MessageTypeUserActivity = "user-activity"
)

type rawMessage struct {
	t    int
	data []byte
}

type message struct {
	Type string      `json:"type"`
	Body interface{} `json:"body"`
}

func makeMessage(t string, b interface{}) (m *message) {
	return &message{
		Type: t,
		Body: b,
	}
}

func (m *message) toJSON() (b []byte) {
	b, _ = json.Marshal(m)
	return
}

type inMessage struct {
	Type string              `json:"type"`
	Body jsoniter.RawMessage `json:"body"`
}

// JoinRoomRequest join-roomメッセージのボディ
type JoinRoomRequest struct {
	RoomID string `json:"roomId"`
	Token  string `json:"token"`
}
