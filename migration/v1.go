package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// v1 stats.total_orders_todayの追加
func v1() *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: "1",
		Migrate: func(db *gorm.DB) error {
			type stats struct {
				TotalOrdersToday int `gorm:"not null;default:0"`
			}
			return db.Table("stats").AutoMigrate(&stats{})
		},
	}
}
