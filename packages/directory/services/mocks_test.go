package services

import (
	"context"

	"gaming-directory/packages/directory/models"

	"github.com/stretchr/testify/mock"
)

type mockGamerRepository struct {
	mock.Mock
}

func (m *mockGamerRepository) List(ctx context.Context) ([]models.Gamer, error) {
	args := m.Called(ctx)
	gamers, _ := args.Get(0).([]models.Gamer)
	return gamers, args.Error(1)
}

func (m *mockGamerRepository) GetByID(ctx context.Context, id uint) (*models.Gamer, error) {
	args := m.Called(ctx, id)
	gamer, _ := args.Get(0).(*models.Gamer)
	return gamer, args.Error(1)
}

func (m *mockGamerRepository) GetByUsername(ctx context.Context, username string) (*models.Gamer, error) {
	args := m.Called(ctx, username)
	gamer, _ := args.Get(0).(*models.Gamer)
	return gamer, args.Error(1)
}

func (m *mockGamerRepository) Create(ctx context.Context, gamer *models.Gamer) error {
	return m.Called(ctx, gamer).Error(0)
}

func (m *mockGamerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockGamerSkillRepository struct {
	mock.Mock
}

func (m *mockGamerSkillRepository) List(ctx context.Context) ([]models.GamerSkill, error) {
	args := m.Called(ctx)
	skills, _ := args.Get(0).([]models.GamerSkill)
	return skills, args.Error(1)
}

func (m *mockGamerSkillRepository) GetByID(ctx context.Context, id uint) (*models.GamerSkill, error) {
	args := m.Called(ctx, id)
	skill, _ := args.Get(0).(*models.GamerSkill)
	return skill, args.Error(1)
}

func (m *mockGamerSkillRepository) GetByGamerAndGame(ctx context.Context, gamerID, gameID uint) (*models.GamerSkill, error) {
	args := m.Called(ctx, gamerID, gameID)
	skill, _ := args.Get(0).(*models.GamerSkill)
	return skill, args.Error(1)
}

func (m *mockGamerSkillRepository) Create(ctx context.Context, skill *models.GamerSkill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *mockGamerSkillRepository) UpdateLevel(ctx context.Context, skill *models.GamerSkill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *mockGamerSkillRepository) FindByGameNameAndLevel(ctx context.Context, gameName string, level models.Level) ([]models.GamerSkill, error) {
	args := m.Called(ctx, gameName, level)
	skills, _ := args.Get(0).([]models.GamerSkill)
	return skills, args.Error(1)
}

func (m *mockGamerSkillRepository) Search(ctx context.Context, filter models.SkillFilter) ([]models.GamerSkill, error) {
	args := m.Called(ctx, filter)
	skills, _ := args.Get(0).([]models.GamerSkill)
	return skills, args.Error(1)
}

func (m *mockGamerSkillRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGamerSkillRepository) CountByLevel(ctx context.Context) (map[models.Level]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[models.Level]int64)
	return counts, args.Error(1)
}
