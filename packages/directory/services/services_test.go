package services

import (
	"context"
	"errors"
	"testing"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	store  *repositories.MemoryStore
	gamers *GamerService
	games  *GameService
	skills *GamerSkillService
	stats  *StatsService
}

func newTestServices() *testServices {
	store := repositories.NewMemoryStore()
	gamerService := NewGamerService(store.Gamers())
	gameService := NewGameService(store.Games())
	return &testServices{
		store:  store,
		gamers: gamerService,
		games:  gameService,
		skills: NewGamerSkillService(store.GamerSkills(), gamerService, gameService),
		stats:  NewStatsService(store.Gamers(), store.Games(), store.GamerSkills()),
	}
}

func strPtr(s string) *string {
	return &s
}

func TestCreateGamerThenGet(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	created, err := svc.gamers.CreateGamer(ctx, "  Joey  ", " USA ")
	require.NoError(t, err)
	assert.Equal(t, "Joey", created.Username)
	assert.Equal(t, "USA", created.Country)

	found, err := svc.gamers.GetGamer(ctx, int64(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Joey", found.Username)
	assert.Equal(t, "USA", found.Country)
}

func TestCreateGamerValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		country  string
		message  string
	}{
		{"blank username", "   ", "USA", "Username is required"},
		{"blank country", "Joey", "", "Country is required"},
		{"short username", "Jo", "USA", "Username must be between 3 and 20 characters"},
		{"long username", "abcdefghijklmnopqrstu", "USA", "Username must be between 3 and 20 characters"},
		{"short country", "Joey", "U", "Country must be between 2 and 60 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestServices()
			_, err := svc.gamers.CreateGamer(context.Background(), tt.username, tt.country)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, tt.message, err.Error())

			total, _ := svc.store.Gamers().Count(context.Background())
			assert.Zero(t, total)
		})
	}
}

func TestCreateGamerDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	_, err := svc.gamers.CreateGamer(ctx, "Joey", "USA")
	require.NoError(t, err)

	_, err = svc.gamers.CreateGamer(ctx, " Joey ", "France")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Username already exists", err.Error())

	gamers, err := svc.gamers.ListGamers(ctx)
	require.NoError(t, err)
	assert.Len(t, gamers, 1)
}

func TestGetGamerInvalidAndMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	for _, id := range []int64{0, -1} {
		_, err := svc.gamers.GetGamer(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	_, err := svc.gamers.GetGamer(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Gamer not found with ID: 99999", err.Error())
}

func TestCreateGame(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()

	game, err := svc.games.CreateGame(ctx, " League of Legends ")
	require.NoError(t, err)
	assert.Equal(t, "League of Legends", game.Name)
	assert.Equal(t, "league-of-legends", game.Slug)

	found, err := svc.games.GetGame(ctx, int64(game.ID))
	require.NoError(t, err)
	assert.Equal(t, game.Name, found.Name)

	_, err = svc.games.CreateGame(ctx, "League of Legends")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.games.CreateGame(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.games.CreateGame(ctx, "X")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.games.GetGame(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.games.GetGame(ctx, 12)
	assert.ErrorIs(t, err, ErrNotFound)
}

func seedDirectory(t *testing.T, svc *testServices) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.gamers.CreateGamer(ctx, "Alice", "USA")
	require.NoError(t, err)
	_, err = svc.gamers.CreateGamer(ctx, "Bob", "France")
	require.NoError(t, err)
	_, err = svc.games.CreateGame(ctx, "csgo")
	require.NoError(t, err)
	_, err = svc.games.CreateGame(ctx, "Diablo")
	require.NoError(t, err)
}

func TestLinkGamerToGameUpsert(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	seedDirectory(t, svc)

	skill, created, err := svc.skills.LinkGamerToGame(ctx, " Alice ", " csgo ", "noob")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.LevelNoob, skill.Level)
	assert.Equal(t, "Alice", skill.Gamer.Username)
	assert.Equal(t, "csgo", skill.Game.Name)

	updated, created, err := svc.skills.LinkGamerToGame(ctx, "Alice", "csgo", "PRO")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, skill.ID, updated.ID)
	assert.Equal(t, models.LevelPro, updated.Level)

	skills, err := svc.skills.ListGamerSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, models.LevelPro, skills[0].Level)

	found, err := svc.skills.GetGamerSkill(ctx, int64(skill.ID))
	require.NoError(t, err)
	assert.Equal(t, models.LevelPro, found.Level)
}

func TestLinkGamerToGameFailures(t *testing.T) {
	tests := []struct {
		name     string
		username string
		gameName string
		level    string
		kind     error
		message  string
	}{
		{"missing username", "", "csgo", "PRO", ErrInvalidArgument, "Username is required"},
		{"missing game", "Alice", " ", "PRO", ErrInvalidArgument, "Game name is required"},
		{"missing level", "Alice", "csgo", "", ErrInvalidArgument, "Level is required"},
		{"unknown level", "Alice", "csgo", "GODLIKE", ErrInvalidArgument, "invalid level 'GODLIKE'. Valid values are: NOOB, PRO, INVINCIBLE"},
		{"unknown gamer", "Nobody", "csgo", "PRO", ErrNotFound, "Gamer not found with username: Nobody"},
		{"unknown game", "Alice", "Tetris", "PRO", ErrNotFound, "Game not found with name: Tetris"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestServices()
			seedDirectory(t, svc)

			_, _, err := svc.skills.LinkGamerToGame(ctx, tt.username, tt.gameName, tt.level)
			require.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.message, err.Error())

			total, err := svc.store.GamerSkills().Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, total)
		})
	}
}

func TestGetGamersByLevelAndGame(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	seedDirectory(t, svc)

	_, _, err := svc.skills.LinkGamerToGame(ctx, "Alice", "csgo", "PRO")
	require.NoError(t, err)
	_, _, err = svc.skills.LinkGamerToGame(ctx, "Bob", "csgo", "NOOB")
	require.NoError(t, err)

	skills, err := svc.skills.GetGamersByLevelAndGame(ctx, "csgo", "pro")
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Alice", skills[0].Gamer.Username)

	skills, err = svc.skills.GetGamersByLevelAndGame(ctx, "Diablo", "PRO")
	require.NoError(t, err)
	assert.Empty(t, skills)

	_, err = svc.skills.GetGamersByLevelAndGame(ctx, "", "PRO")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.skills.GetGamersByLevelAndGame(ctx, "csgo", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSearchGamers(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	seedDirectory(t, svc)

	_, _, err := svc.skills.LinkGamerToGame(ctx, "Alice", "csgo", "PRO")
	require.NoError(t, err)
	_, _, err = svc.skills.LinkGamerToGame(ctx, "Bob", "csgo", "PRO")
	require.NoError(t, err)

	skills, err := svc.skills.SearchGamers(ctx, strPtr("PRO"), strPtr("csgo"), strPtr("USA"))
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Alice", skills[0].Gamer.Username)

	skills, err = svc.skills.SearchGamers(ctx, nil, nil, nil)
	require.NoError(t, err)
	assert.Len(t, skills, 2)

	skills, err = svc.skills.SearchGamers(ctx, strPtr(""), strPtr("  "), nil)
	require.NoError(t, err)
	assert.Len(t, skills, 2)

	_, err = svc.skills.SearchGamers(ctx, strPtr("ROOKIE"), nil, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGetStats(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices()
	seedDirectory(t, svc)

	_, _, err := svc.skills.LinkGamerToGame(ctx, "Alice", "csgo", "PRO")
	require.NoError(t, err)

	stats, err := svc.stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalGamers)
	assert.Equal(t, int64(2), stats.TotalGames)
	assert.Equal(t, int64(1), stats.TotalSkills)
	assert.Equal(t, int64(1), stats.SkillsByLevel[models.LevelPro])
	assert.Equal(t, int64(0), stats.SkillsByLevel[models.LevelNoob])
}

func TestErrorUnwrapsToKind(t *testing.T) {
	err := notFound("Gamer not found with ID: %d", 3)

	var domainErr *Error
	require.True(t, errors.As(err, &domainErr))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, "Gamer not found with ID: 3", err.Error())
}
