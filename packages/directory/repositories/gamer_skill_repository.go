package repositories

import (
	"context"

	"gaming-directory/packages/directory/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormGamerSkillRepository struct {
	db *gorm.DB
}

func NewGormGamerSkillRepository(db *gorm.DB) *GormGamerSkillRepository {
	return &GormGamerSkillRepository{
		db: db,
	}
}

// withRelations joins gamers and games so that filters can reach their columns,
// and preloads both sides for the response mapping.
func (r *GormGamerSkillRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Select("gamer_skills.*").
		Joins("JOIN gamers ON gamers.id = gamer_skills.gamer_id").
		Joins("JOIN games ON games.id = gamer_skills.game_id").
		Preload("Gamer").
		Preload("Game")
}

func (r *GormGamerSkillRepository) List(ctx context.Context) ([]models.GamerSkill, error) {
	var skills []models.GamerSkill

	if err := r.withRelations(ctx).Order("gamer_skills.id ASC").Find(&skills).Error; err != nil {
		return nil, translateError(err)
	}

	return skills, nil
}

func (r *GormGamerSkillRepository) GetByID(ctx context.Context, id uint) (*models.GamerSkill, error) {
	var skill models.GamerSkill

	if err := r.withRelations(ctx).Where("gamer_skills.id = ?", id).First(&skill).Error; err != nil {
		return nil, translateError(err)
	}

	return &skill, nil
}

func (r *GormGamerSkillRepository) GetByGamerAndGame(ctx context.Context, gamerID, gameID uint) (*models.GamerSkill, error) {
	var skill models.GamerSkill

	result := r.withRelations(ctx).
		Where("gamer_skills.gamer_id = ? AND gamer_skills.game_id = ?", gamerID, gameID).
		First(&skill)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return &skill, nil
}

// Create inserts the skill row only; Gamer and Game are never written through it.
func (r *GormGamerSkillRepository) Create(ctx context.Context, skill *models.GamerSkill) error {
	return translateError(r.db.WithContext(ctx).Omit(clause.Associations).Create(skill).Error)
}

func (r *GormGamerSkillRepository) UpdateLevel(ctx context.Context, skill *models.GamerSkill) error {
	result := r.db.WithContext(ctx).
		Model(&models.GamerSkill{ID: skill.ID}).
		Update("level", skill.Level)
	if result.Error != nil {
		return translateError(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *GormGamerSkillRepository) FindByGameNameAndLevel(ctx context.Context, gameName string, level models.Level) ([]models.GamerSkill, error) {
	var skills []models.GamerSkill

	result := r.withRelations(ctx).
		Where("games.name = ? AND gamer_skills.level = ?", gameName, level).
		Order("gamer_skills.id ASC").
		Find(&skills)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	return skills, nil
}

// Search appends one predicate per present filter; with no filters it returns every skill.
func (r *GormGamerSkillRepository) Search(ctx context.Context, filter models.SkillFilter) ([]models.GamerSkill, error) {
	var skills []models.GamerSkill

	query := r.withRelations(ctx)
	if filter.Level != nil {
		query = query.Where("gamer_skills.level = ?", *filter.Level)
	}
	if filter.GameName != nil {
		query = query.Where("games.name = ?", *filter.GameName)
	}
	if filter.Country != nil {
		query = query.Where("gamers.country = ?", *filter.Country)
	}

	if err := query.Order("gamer_skills.id ASC").Find(&skills).Error; err != nil {
		return nil, translateError(err)
	}

	return skills, nil
}

func (r *GormGamerSkillRepository) Count(ctx context.Context) (int64, error) {
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.GamerSkill{}).Count(&total).Error; err != nil {
		return 0, translateError(err)
	}

	return total, nil
}

func (r *GormGamerSkillRepository) CountByLevel(ctx context.Context) (map[models.Level]int64, error) {
	var rows []struct {
		Level models.Level
		Total int64
	}

	result := r.db.WithContext(ctx).
		Model(&models.GamerSkill{}).
		Select("level, COUNT(*) AS total").
		Group("level").
		Scan(&rows)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}

	counts := make(map[models.Level]int64, len(models.AllLevels()))
	for _, level := range models.AllLevels() {
		counts[level] = 0
	}
	for _, row := range rows {
		counts[row.Level] = row.Total
	}

	return counts, nil
}
