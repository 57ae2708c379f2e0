package gorm

import (
	"github.com/leandro-lugaresi/hub"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cloudkitchen/cloudkitchen/migration"
	"github.com/cloudkitchen/cloudkitchen/repository"
)

// Repository リポジトリ実装
type Repository struct {
	db      *gorm.DB
	hub     *hub.Hub
	logger  *zap.Logger
	kitchen *kitchenStatusCache
}

// Sync implements Repository interface.
func (repo *Repository) Sync() (init bool, err error) {
	return migration.Migrate(repo.db)
}

// NewGormRepository リポジトリ実装を初期化して生成します
func NewGormRepository(db *gorm.DB, hub *hub.Hub, logger *zap.Logger) (repository.Repository, error) {
	repo := &Repository{
		db:     db,
		hub:    hub,
		logger: logger.Named("repository"),
	}
	repo.kitchen = makeKitchenStatusCache(repo)
	return repo, nil
}
