package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/leandro-lugaresi/hub"
	"github.com/motoki317/sc"
	"gorm.io/gorm"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
)

// kitchenStatusCache 単一レコードのキャッシュ
//
// メニューページの読み込み毎に参照されるため、更新時に明示的にForgetする
type kitchenStatusCache struct {
	status *sc.Cache[struct{}, *model.KitchenStatus]
}

func makeKitchenStatusCache(repo *Repository) *kitchenStatusCache {
	c := &kitchenStatusCache{}
	c.status = sc.NewMust(func(_ context.Context, _ struct{}) (*model.KitchenStatus, error) {
		return repo.loadKitchenStatus()
	}, 365*24*time.Hour, 365*24*time.Hour)
	return c
}

func (repo *Repository) loadKitchenStatus() (*model.KitchenStatus, error) {
	var ks model.KitchenStatus
	err := repo.db.First(&ks).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 初回アクセス時に営業中で作成
		ks = model.KitchenStatus{IsOpen: true}
		if err := repo.db.Create(&ks).Error; err != nil {
			return nil, err
		}
		return &ks, nil
	}
	if err != nil {
		return nil, err
	}
	return &ks, nil
}

// GetKitchenStatus implements KitchenRepository interface.
func (repo *Repository) GetKitchenStatus() (*model.KitchenStatus, error) {
	return repo.kitchen.status.Get(context.Background(), struct{}{})
}

// SetKitchenStatus implements KitchenRepository interface.
func (repo *Repository) SetKitchenStatus(isOpen bool, updatedBy string) (*model.KitchenStatus, error) {
	ks, err := repo.loadKitchenStatus()
	if err != nil {
		return nil, err
	}
	err = repo.db.Model(ks).Updates(map[string]interface{}{
		"is_open":    isOpen,
		"updated_by": updatedBy,
	}).Error
	if err != nil {
		return nil, err
	}
	repo.kitchen.status.Forget(struct{}{})

	repo.hub.Publish(hub.Message{
		Name: event.KitchenStatusChanged,
		Fields: hub.Fields{
			"is_open": isOpen,
		},
	})
	return ks, nil
}
