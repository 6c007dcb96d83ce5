package repositories

import (
	"context"

	"gaming-directory/packages/directory/models"

	"gorm.io/gorm"
)

type GormGameRepository struct {
	db *gorm.DB
}

func NewGormGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{
		db: db,
	}
}

func (r *GormGameRepository) List(ctx context.Context) ([]models.Game, error) {
	var games []models.Game

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&games).Error; err != nil {
		return nil, translateError(err)
	}

	return games, nil
}

func (r *GormGameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game

	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, translateError(err)
	}

	return &game, nil
}

func (r *GormGameRepository) GetByName(ctx context.Context, name string) (*models.Game, error) {
	var game models.Game

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&game).Error; err != nil {
		return nil, translateError(err)
	}

	return &game, nil
}

func (r *GormGameRepository) Create(ctx context.Context, game *models.Game) error {
	return translateError(r.db.WithContext(ctx).Create(game).Error)
}

func (r *GormGameRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Game{}).Count(&total).Error; err != nil {
		return 0, translateError(err)
	}

	return total, nil
}
