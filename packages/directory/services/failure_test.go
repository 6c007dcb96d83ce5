package services

import (
	"context"
	"errors"
	"testing"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateGamerRaceSurfacesConflict(t *testing.T) {
	repo := new(mockGamerRepository)
	repo.On("GetByUsername", mock.Anything, "Joey").Return(nil, repositories.ErrNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Gamer")).Return(repositories.ErrDuplicate)

	_, err := NewGamerService(repo).CreateGamer(context.Background(), "Joey", "USA")

	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username already exists", err.Error())
	repo.AssertExpectations(t)
}

func TestGamerStoreFailureIsInternal(t *testing.T) {
	storeDown := errors.New("connection refused")

	repo := new(mockGamerRepository)
	repo.On("List", mock.Anything).Return(nil, storeDown)
	repo.On("GetByID", mock.Anything, uint(4)).Return(nil, storeDown)

	svc := NewGamerService(repo)

	_, err := svc.ListGamers(context.Background())
	require.ErrorIs(t, err, storeDown)
	assert.False(t, errors.Is(err, ErrNotFound))

	_, err = svc.GetGamer(context.Background(), 4)
	require.ErrorIs(t, err, storeDown)
	var domainErr *Error
	assert.False(t, errors.As(err, &domainErr))
}

func TestLinkGamerToGameRaceFallsBackToUpdate(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	gamerService := NewGamerService(store.Gamers())
	gameService := NewGameService(store.Games())

	gamer, err := gamerService.CreateGamer(ctx, "Chandler", "USA")
	require.NoError(t, err)
	game, err := gameService.CreateGame(ctx, "Fortnite")
	require.NoError(t, err)

	concurrent := &models.GamerSkill{ID: 9, GamerID: gamer.ID, GameID: game.ID, Level: models.LevelNoob, Gamer: *gamer, Game: *game}

	skills := new(mockGamerSkillRepository)
	skills.On("GetByGamerAndGame", mock.Anything, gamer.ID, game.ID).Return(nil, repositories.ErrNotFound).Once()
	skills.On("Create", mock.Anything, mock.AnythingOfType("*models.GamerSkill")).Return(repositories.ErrDuplicate)
	skills.On("GetByGamerAndGame", mock.Anything, gamer.ID, game.ID).Return(concurrent, nil).Once()
	skills.On("UpdateLevel", mock.Anything, concurrent).Return(nil)

	svc := NewGamerSkillService(skills, gamerService, gameService)
	skill, created, err := svc.LinkGamerToGame(ctx, "Chandler", "Fortnite", "INVINCIBLE")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, uint(9), skill.ID)
	assert.Equal(t, models.LevelInvincible, skill.Level)
	skills.AssertExpectations(t)
}

func TestSearchGamersBuildsFilter(t *testing.T) {
	level := models.LevelPro
	country := "France"

	skills := new(mockGamerSkillRepository)
	skills.On("Search", mock.Anything, models.SkillFilter{Level: &level, Country: &country}).
		Return([]models.GamerSkill{{ID: 1}}, nil)

	svc := NewGamerSkillService(skills, nil, nil)
	result, err := svc.SearchGamers(context.Background(), strPtr(" pro "), nil, strPtr(" France "))

	require.NoError(t, err)
	assert.Len(t, result, 1)
	skills.AssertExpectations(t)
}
