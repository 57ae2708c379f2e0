package model

import (
	"time"
)

// Stats 日別の集計レコード
//
// Dateは"YYYY-MM-DD"形式のサーバーローカル日付キー
type Stats struct {
	Date             string    `gorm:"type:char(10);not null;primaryKey" json:"date"`
	DailyVisitors    int       `gorm:"not null;default:0"                json:"dailyVisitors"`
	TotalOrdersToday int       `gorm:"not null;default:0"                json:"totalOrdersToday"`
	CreatedAt        time.Time `gorm:"precision:6"                       json:"createdAt"`
	UpdatedAt        time.Time `gorm:"precision:6"                       json:"updatedAt"`
}

// TableName テーブル名
func (*Stats) TableName() string {
	return "stats"
}

// DateKey 時刻tのサーバーローカル日付キーを返します
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
