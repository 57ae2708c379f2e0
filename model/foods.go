package model

import (
	"time"

	"github.com/gofrs/uuid"
)

// Food メニューアイテムの構造体
type Food struct {
	ID          uuid.UUID `gorm:"type:char(36);not null;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null"        json:"name"`
	Price       float64   `gorm:"not null"                          json:"price"`
	Description string    `gorm:"type:text"                         json:"description"`
	Category    string    `gorm:"type:varchar(50);index"            json:"category"`
	ImageURL    string    `gorm:"type:text"                         json:"imageUrl"`
	Available   bool      `gorm:"not null;default:true"             json:"available"`
	Rating      float64   `gorm:"not null;default:0"                json:"rating"`
	Reviews     int       `gorm:"not null;default:0"                json:"reviews"`
	CreatedAt   time.Time `gorm:"precision:6"                       json:"createdAt"`
	UpdatedAt   time.Time `gorm:"precision:6"                       json:"updatedAt"`
}

// TableName テーブル名
func (*Food) TableName() string {
	return "foods"
}
