package event

const (
	// OrderCreated 注文が作成された
	// 	Fields:
	// 		order_id: uuid.UUID
	// 		order: *model.Order
	OrderCreated = "order.created"
	// OrderUpdated 注文のステータスが更新された
	// 	Fields:
	// 		order_id: uuid.UUID
	// 		order: *model.Order
	OrderUpdated = "order.updated"
	// OrderDeleted 注文が削除された
	// 	Fields:
	// 		order_id: uuid.UUID
	OrderDeleted = "order.deleted"

	// FoodCreated メニューアイテムが追加された
	// 	Fields:
	// 		food_id: uuid.UUID
	// 		food: *model.Food
	FoodCreated = "food.created"
	// FoodUpdated メニューアイテムが更新された
	// 	Fields:
	// 		food_id: uuid.UUID
	// 		food: *model.Food
	FoodUpdated = "food.updated"
	// FoodDeleted メニューアイテムが削除された
	// 	Fields:
	// 		food_id: uuid.UUID
	FoodDeleted = "food.deleted"

	// KitchenStatusChanged キッチンの営業状態が切り替わった
	// 	Fields:
	// 		is_open: bool
	KitchenStatusChanged = "kitchen.status_changed"

	// MetricsUpdated ライブメトリクスが更新された
	// 	Fields:
	// 		metrics: presence.Metrics
	MetricsUpdated = "metrics.updated"

	// WSConnected 新たなWebSocketコネクションが確立された
	// 	Fields:
	// 		conn_key: string
	// 		req: *http.Request
	WSConnected = "ws.connected"
	// WSDisconnected WebSocketコネクションが切断された
	// 	Fields:
	// 		conn_key: string
	// 		req: *http.Request
	WSDisconnected = "ws.disconnected"
	// WSRoomJoined コネクションがルームに参加した
	// 	Fields:
	// 		conn_key: string
	// 		room_id: string
	WSRoomJoined = "ws.room_joined"
)
