package gorm

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
)

// CreateOrder implements OrderRepository interface.
func (repo *Repository) CreateOrder(args repository.CreateOrderArgs) (*model.Order, error) {
	if len(args.UserID) == 0 {
		return nil, repository.ArgError("userId", "UserId is required")
	}
	if len(args.Items) == 0 {
		return nil, repository.ArgError("items", "Items must not be empty")
	}
	if args.Total < 0 {
		return nil, repository.ArgError("total", "Total must not be negative")
	}

	o := &model.Order{
		ID:            uuid.Must(uuid.NewV4()),
		UserID:        args.UserID,
		Items:         args.Items,
		Total:         args.Total,
		Address:       args.Address,
		LocationLat:   args.Location.Lat,
		LocationLng:   args.Location.Lng,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
	}
	if err := repo.db.Create(o).Error; err != nil {
		return nil, err
	}

	// 日別注文数は集計用のベストエフォート
	if err := repo.IncrementTotalOrders(model.DateKey(time.Now())); err != nil {
		repo.logger.Warn("failed to increment total orders", zap.Error(err))
	}

	repo.hub.Publish(hub.Message{
		Name: event.OrderCreated,
		Fields: hub.Fields{
			"order_id": o.ID,
			"order":    o,
		},
	})
	return o, nil
}

// UpdateOrderStatus implements OrderRepository interface.
func (repo *Repository) UpdateOrderStatus(id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}
	if !status.Valid() {
		return nil, repository.ArgError("status", "invalid order status")
	}

	var o model.Order
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&o, &model.Order{ID: id}).Error; err != nil {
			return convertError(err)
		}
		return tx.Model(&o).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.OrderUpdated,
		Fields: hub.Fields{
			"order_id": o.ID,
			"order":    &o,
		},
	})
	return &o, nil
}

// DeleteOrder implements OrderRepository interface.
func (repo *Repository) DeleteOrder(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	result := repo.db.Delete(&model.Order{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	repo.hub.Publish(hub.Message{
		Name: event.OrderDeleted,
		Fields: hub.Fields{
			"order_id": id,
		},
	})
	return nil
}

// GetOrder implements OrderRepository interface.
func (repo *Repository) GetOrder(id uuid.UUID) (*model.Order, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var o model.Order
	if err := repo.db.First(&o, &model.Order{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &o, nil
}

// GetOrders implements OrderRepository interface.
func (repo *Repository) GetOrders() (orders []*model.Order, err error) {
	orders = make([]*model.Order, 0)
	return orders, repo.db.Order("created_at DESC").Find(&orders).Error
}

// GetOrdersByUserID implements OrderRepository interface.
func (repo *Repository) GetOrdersByUserID(userID string) (orders []*model.Order, err error) {
	orders = make([]*model.Order, 0)
	return orders, repo.db.Where(&model.Order{UserID: userID}).Order("created_at DESC").Find(&orders).Error
}
