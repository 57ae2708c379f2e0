package gorm

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudkitchen/cloudkitchen/model"
)

// IncrementDailyVisitors implements StatsRepository interface.
//
// read-then-writeではなくupsertで行うことで、同時実行時の更新ロストを防ぐ
func (repo *Repository) IncrementDailyVisitors(date string) error {
	return repo.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"daily_visitors": gorm.Expr("daily_visitors + 1")}),
		}).
		Create(&model.Stats{Date: date, DailyVisitors: 1}).
		Error
}

// IncrementTotalOrders implements StatsRepository interface.
func (repo *Repository) IncrementTotalOrders(date string) error {
	return repo.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"total_orders_today": gorm.Expr("total_orders_today + 1")}),
		}).
		Create(&model.Stats{Date: date, TotalOrdersToday: 1}).
		Error
}

// GetStats implements StatsRepository interface.
func (repo *Repository) GetStats(date string) (*model.Stats, error) {
	var s model.Stats
	if err := repo.db.First(&s, &model.Stats{Date: date}).Error; err != nil {
		return nil, convertError(err)
	}
	return &s, nil
}
