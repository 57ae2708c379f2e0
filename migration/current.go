package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // stats.total_orders_todayの追加
	}
}
