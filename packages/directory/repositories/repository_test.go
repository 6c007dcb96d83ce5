package repositories

import (
	"context"
	"testing"

	"gaming-directory/packages/directory/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type repositorySet struct {
	gamers GamerRepository
	games  GameRepository
	skills GamerSkillRepository
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.Gamer{}, &models.Game{}, &models.GamerSkill{}))
	return db
}

func implementations() map[string]func(t *testing.T) repositorySet {
	return map[string]func(t *testing.T) repositorySet{
		"gorm": func(t *testing.T) repositorySet {
			db := newTestDB(t)
			return repositorySet{
				gamers: NewGormGamerRepository(db),
				games:  NewGormGameRepository(db),
				skills: NewGormGamerSkillRepository(db),
			}
		},
		"memory": func(t *testing.T) repositorySet {
			store := NewMemoryStore()
			return repositorySet{
				gamers: store.Gamers(),
				games:  store.Games(),
				skills: store.GamerSkills(),
			}
		},
	}
}

func TestGamerRepository(t *testing.T) {
	ctx := context.Background()

	for name, build := range implementations() {
		t.Run(name, func(t *testing.T) {
			repos := build(t)

			gamer := &models.Gamer{Username: "Joey", Country: "USA"}
			require.NoError(t, repos.gamers.Create(ctx, gamer))
			assert.NotZero(t, gamer.ID)

			found, err := repos.gamers.GetByID(ctx, gamer.ID)
			require.NoError(t, err)
			assert.Equal(t, "Joey", found.Username)
			assert.Equal(t, "USA", found.Country)

			found, err = repos.gamers.GetByUsername(ctx, "Joey")
			require.NoError(t, err)
			assert.Equal(t, gamer.ID, found.ID)

			err = repos.gamers.Create(ctx, &models.Gamer{Username: "Joey", Country: "France"})
			assert.ErrorIs(t, err, ErrDuplicate)

			_, err = repos.gamers.GetByID(ctx, 99999)
			assert.ErrorIs(t, err, ErrNotFound)

			_, err = repos.gamers.GetByUsername(ctx, "Nobody")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, repos.gamers.Create(ctx, &models.Gamer{Username: "Ross", Country: "Canada"}))
			gamers, err := repos.gamers.List(ctx)
			require.NoError(t, err)
			assert.Len(t, gamers, 2)

			total, err := repos.gamers.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(2), total)
		})
	}
}

func TestGameRepository(t *testing.T) {
	ctx := context.Background()

	for name, build := range implementations() {
		t.Run(name, func(t *testing.T) {
			repos := build(t)

			game := &models.Game{Name: "Diablo", Slug: "diablo"}
			require.NoError(t, repos.games.Create(ctx, game))
			assert.NotZero(t, game.ID)

			found, err := repos.games.GetByName(ctx, "Diablo")
			require.NoError(t, err)
			assert.Equal(t, game.ID, found.ID)
			assert.Equal(t, "diablo", found.Slug)

			err = repos.games.Create(ctx, &models.Game{Name: "Diablo"})
			assert.ErrorIs(t, err, ErrDuplicate)

			_, err = repos.games.GetByID(ctx, 42)
			assert.ErrorIs(t, err, ErrNotFound)

			games, err := repos.games.List(ctx)
			require.NoError(t, err)
			assert.Len(t, games, 1)
		})
	}
}

func TestGamerSkillRepositoryConstraints(t *testing.T) {
	ctx := context.Background()

	for name, build := range implementations() {
		t.Run(name, func(t *testing.T) {
			repos := build(t)

			gamer := &models.Gamer{Username: "Monica", Country: "UK"}
			require.NoError(t, repos.gamers.Create(ctx, gamer))
			game := &models.Game{Name: "Fortnite"}
			require.NoError(t, repos.games.Create(ctx, game))

			skill := &models.GamerSkill{GamerID: gamer.ID, GameID: game.ID, Level: models.LevelNoob}
			require.NoError(t, repos.skills.Create(ctx, skill))
			assert.NotZero(t, skill.ID)

			err := repos.skills.Create(ctx, &models.GamerSkill{GamerID: gamer.ID, GameID: game.ID, Level: models.LevelPro})
			assert.ErrorIs(t, err, ErrDuplicate)

			err = repos.skills.Create(ctx, &models.GamerSkill{GamerID: 777, GameID: game.ID, Level: models.LevelPro})
			assert.ErrorIs(t, err, ErrForeignKey)

			skill.Level = models.LevelInvincible
			require.NoError(t, repos.skills.UpdateLevel(ctx, skill))

			found, err := repos.skills.GetByGamerAndGame(ctx, gamer.ID, game.ID)
			require.NoError(t, err)
			assert.Equal(t, models.LevelInvincible, found.Level)
			assert.Equal(t, "Monica", found.Gamer.Username)
			assert.Equal(t, "Fortnite", found.Game.Name)

			found, err = repos.skills.GetByID(ctx, skill.ID)
			require.NoError(t, err)
			assert.Equal(t, "UK", found.Gamer.Country)

			_, err = repos.skills.GetByGamerAndGame(ctx, gamer.ID, 999)
			assert.ErrorIs(t, err, ErrNotFound)

			err = repos.skills.UpdateLevel(ctx, &models.GamerSkill{ID: 999, Level: models.LevelPro})
			assert.ErrorIs(t, err, ErrNotFound)

			total, err := repos.skills.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, int64(1), total)
		})
	}
}

func seedSearchData(t *testing.T, repos repositorySet) {
	t.Helper()
	ctx := context.Background()

	gamers := map[string]*models.Gamer{
		"A": {Username: "A", Country: "USA"},
		"B": {Username: "B", Country: "France"},
		"C": {Username: "C", Country: "USA"},
	}
	for _, key := range []string{"A", "B", "C"} {
		require.NoError(t, repos.gamers.Create(ctx, gamers[key]))
	}
	csgo := &models.Game{Name: "csgo"}
	require.NoError(t, repos.games.Create(ctx, csgo))
	lol := &models.Game{Name: "lol"}
	require.NoError(t, repos.games.Create(ctx, lol))

	links := []struct {
		gamer string
		game  *models.Game
		level models.Level
	}{
		{"A", csgo, models.LevelPro},
		{"B", csgo, models.LevelPro},
		{"C", csgo, models.LevelNoob},
		{"A", lol, models.LevelInvincible},
	}
	for _, link := range links {
		require.NoError(t, repos.skills.Create(ctx, &models.GamerSkill{
			GamerID: gamers[link.gamer].ID,
			GameID:  link.game.ID,
			Level:   link.level,
		}))
	}
}

func usernamesOf(skills []models.GamerSkill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Gamer.Username+"/"+skill.Game.Name)
	}
	return names
}

func TestGamerSkillRepositorySearch(t *testing.T) {
	ctx := context.Background()
	pro := models.LevelPro
	csgo := "csgo"
	usa := "USA"

	tests := []struct {
		name   string
		filter models.SkillFilter
		want   []string
	}{
		{"no filters", models.SkillFilter{}, []string{"A/csgo", "B/csgo", "C/csgo", "A/lol"}},
		{"level", models.SkillFilter{Level: &pro}, []string{"A/csgo", "B/csgo"}},
		{"game", models.SkillFilter{GameName: &csgo}, []string{"A/csgo", "B/csgo", "C/csgo"}},
		{"country", models.SkillFilter{Country: &usa}, []string{"A/csgo", "C/csgo", "A/lol"}},
		{"level and game", models.SkillFilter{Level: &pro, GameName: &csgo}, []string{"A/csgo", "B/csgo"}},
		{"level and country", models.SkillFilter{Level: &pro, Country: &usa}, []string{"A/csgo"}},
		{"game and country", models.SkillFilter{GameName: &csgo, Country: &usa}, []string{"A/csgo", "C/csgo"}},
		{"all filters", models.SkillFilter{Level: &pro, GameName: &csgo, Country: &usa}, []string{"A/csgo"}},
	}

	for name, build := range implementations() {
		t.Run(name, func(t *testing.T) {
			repos := build(t)
			seedSearchData(t, repos)

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					skills, err := repos.skills.Search(ctx, tt.filter)
					require.NoError(t, err)
					assert.Equal(t, tt.want, usernamesOf(skills))
				})
			}

			skills, err := repos.skills.FindByGameNameAndLevel(ctx, "csgo", models.LevelNoob)
			require.NoError(t, err)
			assert.Equal(t, []string{"C/csgo"}, usernamesOf(skills))

			skills, err = repos.skills.FindByGameNameAndLevel(ctx, "unknown", models.LevelNoob)
			require.NoError(t, err)
			assert.Empty(t, skills)

			all, err := repos.skills.List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 4)

			counts, err := repos.skills.CountByLevel(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[models.Level]int64{
				models.LevelNoob:       1,
				models.LevelPro:        2,
				models.LevelInvincible: 1,
			}, counts)
		})
	}
}
