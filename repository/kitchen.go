package repository

import (
	"github.com/cloudkitchen/cloudkitchen/model"
)

// KitchenRepository キッチン営業状態リポジトリ
type KitchenRepository interface {
	// GetKitchenStatus キッチンの営業状態を取得します
	//
	// レコードが存在しない場合、営業中として作成してから返します。
	// DBによるエラーを返すことがあります。
	GetKitchenStatus() (*model.KitchenStatus, error)
	// SetKitchenStatus キッチンの営業状態を設定します
	//
	// 成功した場合、更新後の状態とnilを返します。
	// DBによるエラーを返すことがあります。
	SetKitchenStatus(isOpen bool, updatedBy string) (*model.KitchenStatus, error)
}
