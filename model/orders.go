package model

import (
	"database/sql/driver"
	"errors"
	"time"

	"github.com/gofrs/uuid"
)

// OrderStatus 注文ステータス
type OrderStatus string

const (
	// OrderStatusPending 受付待ち
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted 受付済み
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusPreparing 調理中
	OrderStatusPreparing OrderStatus = "preparing"
	// OrderStatusReady 調理完了
	OrderStatusReady OrderStatus = "ready"
	// OrderStatusOutForDelivery 配達中
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	// OrderStatusCompleted 完了
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled キャンセル
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid 有効なステータス値かどうか
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusPreparing, OrderStatusReady,
		OrderStatusOutForDelivery, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus 支払いステータス
type PaymentStatus string

const (
	// PaymentStatusPending 支払い待ち
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid 支払い済み
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusFailed 支払い失敗
	PaymentStatusFailed PaymentStatus = "failed"
)

// OrderItem 注文アイテムのスナップショット
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

// OrderItems 注文アイテムのJSONカラム
type OrderItems []OrderItem

// Value database/sql/driver.Valuer 実装
func (v OrderItems) Value() (driver.Value, error) {
	return json.MarshalToString(v)
}

// Scan database/sql.Scanner 実装
func (v *OrderItems) Scan(src interface{}) error {
	switch s := src.(type) {
	case nil:
		return nil
	case string:
		return json.Unmarshal([]byte(s), v)
	case []byte:
		return json.Unmarshal(s, v)
	default:
		return errors.New("failed to scan OrderItems")
	}
}

// Location 配達先座標
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Order 注文の構造体
type Order struct {
	ID            uuid.UUID     `gorm:"type:char(36);not null;primaryKey"            json:"id"`
	UserID        string        `gorm:"type:varchar(64);not null;index"              json:"userId"`
	Items         OrderItems    `gorm:"type:text;not null"                           json:"items"`
	Total         float64       `gorm:"not null"                                     json:"total"`
	Address       JSON          `gorm:"type:text"                                    json:"address"`
	LocationLat   float64       `gorm:"column:location_lat"                          json:"-"`
	LocationLng   float64       `gorm:"column:location_lng"                          json:"-"`
	Status        OrderStatus   `gorm:"type:varchar(20);not null;default:'pending'"  json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'"  json:"paymentStatus"`
	CreatedAt     time.Time     `gorm:"precision:6"                                  json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"precision:6"                                  json:"updatedAt"`
}

// TableName テーブル名
func (*Order) TableName() string {
	return "orders"
}

// MarshalJSON encoding/json.Marshaler 実装
//
// locationを入れ子オブジェクトとして返すためのカスタム実装
func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		Location Location `json:"location"`
	}{
		alias:    alias(o),
		Location: Location{Lat: o.LocationLat, Lng: o.LocationLng},
	})
}
