package repositories

import (
	"context"

	"gaming-directory/packages/directory/models"

	"gorm.io/gorm"
)

type GormGamerRepository struct {
	db *gorm.DB
}

func NewGormGamerRepository(db *gorm.DB) *GormGamerRepository {
	return &GormGamerRepository{
		db: db,
	}
}

func (r *GormGamerRepository) List(ctx context.Context) ([]models.Gamer, error) {
	var gamers []models.Gamer

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&gamers).Error; err != nil {
		return nil, translateError(err)
	}

	return gamers, nil
}

func (r *GormGamerRepository) GetByID(ctx context.Context, id uint) (*models.Gamer, error) {
	var gamer models.Gamer

	if err := r.db.WithContext(ctx).First(&gamer, id).Error; err != nil {
		return nil, translateError(err)
	}

	return &gamer, nil
}

func (r *GormGamerRepository) GetByUsername(ctx context.Context, username string) (*models.Gamer, error) {
	var gamer models.Gamer

	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&gamer).Error; err != nil {
		return nil, translateError(err)
	}

	return &gamer, nil
}

func (r *GormGamerRepository) Create(ctx context.Context, gamer *models.Gamer) error {
	return translateError(r.db.WithContext(ctx).Create(gamer).Error)
}

func (r *GormGamerRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Gamer{}).Count(&total).Error; err != nil {
		return 0, translateError(err)
	}

	return total, nil
}
