package repository

import (
	"github.com/gofrs/uuid"

	"github.com/cloudkitchen/cloudkitchen/model"
)

// CreateOrderArgs 注文作成引数
type CreateOrderArgs struct {
	UserID   string
	Items    model.OrderItems
	Total    float64
	Address  model.JSON
	Location model.Location
}

// OrderRepository 注文リポジトリ
type OrderRepository interface {
	// CreateOrder 注文を作成します
	//
	// 成功した場合、注文とnilを返します。
	// 引数に問題がある場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	CreateOrder(args CreateOrderArgs) (*model.Order, error)
	// UpdateOrderStatus 指定した注文のステータスを更新します
	//
	// 成功した場合、更新後の注文とnilを返します。
	// 存在しない注文の場合、ErrNotFoundを返します。
	// idにuuid.Nilを指定した場合、ErrNilIDを返します。
	// statusが不正な場合、ArgumentErrorを返します。
	// DBによるエラーを返すことがあります。
	UpdateOrderStatus(id uuid.UUID, status model.OrderStatus) (*model.Order, error)
	// DeleteOrder 指定した注文を削除します
	//
	// 成功した場合、nilを返します。
	// 存在しない注文の場合、ErrNotFoundを返します。
	// idにuuid.Nilを指定した場合、ErrNilIDを返します。
	// DBによるエラーを返すことがあります。
	DeleteOrder(id uuid.UUID) error
	// GetOrder 指定したIDの注文を取得します
	//
	// 成功した場合、注文とnilを返します。
	// 存在しなかった場合、ErrNotFoundを返します。
	// DBによるエラーを返すことがあります。
	GetOrder(id uuid.UUID) (*model.Order, error)
	// GetOrders 全注文を作成日時の降順で取得します
	//
	// DBによるエラーを返すことがあります。
	GetOrders() ([]*model.Order, error)
	// GetOrdersByUserID 指定したゲストの注文を作成日時の降順で取得します
	//
	// DBによるエラーを返すことがあります。
	GetOrdersByUserID(userID string) ([]*model.Order, error)
}
