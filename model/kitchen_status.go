package model

import (
	"time"
)

// KitchenStatus キッチンの営業状態
//
// 単一レコードのみ存在する
type KitchenStatus struct {
	ID        int       `gorm:"primaryKey;autoIncrement"  json:"id"`
	IsOpen    bool      `gorm:"not null;default:true"     json:"isOpen"`
	UpdatedBy string    `gorm:"type:varchar(64)"          json:"updatedBy"`
	CreatedAt time.Time `gorm:"precision:6"               json:"createdAt"`
	UpdatedAt time.Time `gorm:"precision:6"               json:"updatedAt"`
}

// TableName テーブル名
func (*KitchenStatus) TableName() string {
	return "kitchen_status"
}
