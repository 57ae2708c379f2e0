package repository

import (
	"github.com/gofrs/uuid"
	"github.com/guregu/null"

	"github.com/cloudkitchen/cloudkitchen/model"
)

// CreateFoodArgs メニューアイテム作成引数
type CreateFoodArgs struct {
	Name        string
	Price       float64
	Description string
	Category    string
	ImageURL    string
	Available   bool
}

// UpdateFoodArgs メニューアイテム更新引数
type UpdateFoodArgs struct {
	Name        null.String
	Price       null.Float
	Description null.String
	Category    null.String
	ImageURL    null.String
	Available   null.Bool
}

// FoodRepository メニューアイテムリポジトリ
type FoodRepository interface {
	// CreateFood メニューアイテムを作成します
	//
	// 成功した場合、メニューアイテムとnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateFood(args CreateFoodArgs) (*model.Food, error)
	// UpdateFood 指定したメニューアイテムを更新します
	//
	// 成功した場合、更新後のメニューアイテムとnilを返します。
	// 存在しないアイテムの場合、ErrNotFoundを返します。
	// idにuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	UpdateFood(id uuid.UUID, args UpdateFoodArgs) (*model.Food, error)
	// DeleteFood 指定したメニューアイテムを削除します
	//
	// 成功した場合、nilを返します。
	// 存在しないアイテムの場合、ErrNotFoundを返します。
	// idにuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteFood(id uuid.UUID) error
	// GetFood 指定したIDのメニューアイテムを取得します
	//
	// 成功した場合、メニューアイテムとnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetFood(id uuid.UUID) (*model.Food, error)
	// GetFoods メニューアイテムを全件取得します。categoryが空でない場合は絞り込みます
	//
	// 成功した場合、メニューアイテムの配列とnilを返します。
	// DBによるエラーを返すことがあります。
	GetFoods(category string) ([]*model.Food, error)
}
