package gorm

import (
	"github.com/gofrs/uuid"
	"github.com/leandro-lugaresi/hub"
	"gorm.io/gorm"

	"github.com/cloudkitchen/cloudkitchen/event"
	"github.com/cloudkitchen/cloudkitchen/model"
	"github.com/cloudkitchen/cloudkitchen/repository"
)

// CreateFood implements FoodRepository interface.
func (repo *Repository) CreateFood(args repository.CreateFoodArgs) (*model.Food, error) {
	if len(args.Name) == 0 {
		return nil, repository.ArgError("name", "Name is required")
	}
	if args.Price < 0 {
		return nil, repository.ArgError("price", "Price must not be negative")
	}

	f := &model.Food{
		ID:          uuid.Must(uuid.NewV4()),
		Name:        args.Name,
		Price:       args.Price,
		Description: args.Description,
		Category:    args.Category,
		ImageURL:    args.ImageURL,
		Available:   args.Available,
	}
	if err := repo.db.Create(f).Error; err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.FoodCreated,
		Fields: hub.Fields{
			"food_id": f.ID,
			"food":    f,
		},
	})
	return f, nil
}

// UpdateFood implements FoodRepository interface.
func (repo *Repository) UpdateFood(id uuid.UUID, args repository.UpdateFoodArgs) (*model.Food, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNilID
	}

	var f model.Food
	err := repo.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&f, &model.Food{ID: id}).Error; err != nil {
			return convertError(err)
		}

		changes := map[string]interface{}{}
		if args.Name.Valid {
			changes["name"] = args.Name.String
		}
		if args.Price.Valid {
			if args.Price.Float64 < 0 {
				return repository.ArgError("price", "Price must not be negative")
			}
			changes["price"] = args.Price.Float64
		}
		if args.Description.Valid {
			changes["description"] = args.Description.String
		}
		if args.Category.Valid {
			changes["category"] = args.Category.String
		}
		if args.ImageURL.Valid {
			changes["image_url"] = args.ImageURL.String
		}
		if args.Available.Valid {
			changes["available"] = args.Available.Bool
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&f).Updates(changes).Error
	})
	if err != nil {
		return nil, err
	}

	repo.hub.Publish(hub.Message{
		Name: event.FoodUpdated,
		Fields: hub.Fields{
			"food_id": f.ID,
			"food":    &f,
		},
	})
	return &f, nil
}

// DeleteFood implements FoodRepository interface.
func (repo *Repository) DeleteFood(id uuid.UUID) error {
	if id == uuid.Nil {
		return repository.ErrNilID
	}

	result := repo.db.Delete(&model.Food{ID: id})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}

	repo.hub.Publish(hub.Message{
		Name: event.FoodDeleted,
		Fields: hub.Fields{
			"food_id": id,
		},
	})
	return nil
}

// GetFood implements FoodRepository interface.
func (repo *Repository) GetFood(id uuid.UUID) (*model.Food, error) {
	if id == uuid.Nil {
		return nil, repository.ErrNotFound
	}
	var f model.Food
	if err := repo.db.First(&f, &model.Food{ID: id}).Error; err != nil {
		return nil, convertError(err)
	}
	return &f, nil
}

// GetFoods implements FoodRepository interface.
func (repo *Repository) GetFoods(category string) (foods []*model.Food, err error) {
	foods = make([]*model.Food, 0)
	tx := repo.db.Order("created_at DESC")
	if len(category) > 0 {
		tx = tx.Where(&model.Food{Category: category})
	}
	return foods, tx.Find(&foods).Error
}
