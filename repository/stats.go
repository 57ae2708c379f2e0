package repository

import (
	"github.com/cloudkitchen/cloudkitchen/model"
)

// StatsRepository 日別集計リポジトリ
type StatsRepository interface {
	// IncrementDailyVisitors 指定した日付の来訪者数をインクリメントします
	//
	// レコードが存在しない場合は作成します (upsert)。
	// DBによるエラーを返すことがあります。
	IncrementDailyVisitors(date string) error
	// IncrementTotalOrders 指定した日付の注文数をインクリメントします
	//
	// レコードが存在しない場合は作成します (upsert)。
	// DBによるエラーを返すことがあります。
	IncrementTotalOrders(date string) error
	// GetStats 指定した日付の集計レコードを取得します
	//
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetStats(date string) (*model.Stats, error)
}
