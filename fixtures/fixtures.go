package fixtures

import (
	"context"
	_ "embed"
	"fmt"

	"gaming-directory/packages/directory"
	"gaming-directory/packages/directory/repositories"
	"gaming-directory/packages/logger"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed data.json
var sampleData []byte

type Dataset struct {
	Gamers []GamerFixture `json:"gamers"`
	Games  []GameFixture  `json:"games"`
	Skills []SkillFixture `json:"skills"`
}

type GamerFixture struct {
	Username string `json:"username"`
	Country  string `json:"country"`
}

type GameFixture struct {
	Name string `json:"name"`
}

type SkillFixture struct {
	Username string `json:"username"`
	GameName string `json:"gameName"`
	Level    string `json:"level"`
}

// ClearFunc wipes every gamer, game and skill from the backing store.
type ClearFunc func(ctx context.Context) error

type Fixtures struct {
	module *directory.Module
	clear  ClearFunc
	log    *logger.Logger
}

func NewFixtures(module *directory.Module, clear ClearFunc, log *logger.Logger) *Fixtures {
	return &Fixtures{module: module, clear: clear, log: log}
}

// SampleData decodes the embedded dataset: 20 gamers, 4 games and 40 skills.
func SampleData() (*Dataset, error) {
	var data Dataset
	if err := json.Unmarshal(sampleData, &data); err != nil {
		return nil, fmt.Errorf("failed to decode sample data: %w", err)
	}
	return &data, nil
}

// GenerateTestData loads the sample dataset through the directory services so
// every record passes the same validation as API input.
func (f *Fixtures) GenerateTestData(ctx context.Context) error {
	data, err := SampleData()
	if err != nil {
		return err
	}
	return f.Load(ctx, data)
}

func (f *Fixtures) Load(ctx context.Context, data *Dataset) error {
	f.log.Info("Starting fixtures generation")

	for _, g := range data.Gamers {
		if _, err := f.module.GamerService.CreateGamer(ctx, g.Username, g.Country); err != nil {
			return fmt.Errorf("failed to create gamer %s: %w", g.Username, err)
		}
	}
	f.log.Info("Sample gamers loaded", zap.Int("count", len(data.Gamers)))

	for _, g := range data.Games {
		if _, err := f.module.GameService.CreateGame(ctx, g.Name); err != nil {
			return fmt.Errorf("failed to create game %s: %w", g.Name, err)
		}
	}
	f.log.Info("Sample games loaded", zap.Int("count", len(data.Games)))

	for _, s := range data.Skills {
		if _, _, err := f.module.GamerSkillService.LinkGamerToGame(ctx, s.Username, s.GameName, s.Level); err != nil {
			return fmt.Errorf("failed to link %s to %s: %w", s.Username, s.GameName, err)
		}
	}
	f.log.Info("Sample gamer skills loaded", zap.Int("count", len(data.Skills)))

	return nil
}

// ClearAllData removes all fixture data
func (f *Fixtures) ClearAllData(ctx context.Context) error {
	if err := f.clear(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	f.log.Info("All fixture data cleared")
	return nil
}

// ClearGorm empties the directory tables. Postgres also restarts the id
// sequences.
func ClearGorm(db *gorm.DB) ClearFunc {
	return func(ctx context.Context) error {
		tx := db.WithContext(ctx)
		if db.Dialector.Name() == "postgres" {
			return tx.Exec("TRUNCATE TABLE gamer_skills, games, gamers RESTART IDENTITY CASCADE").Error
		}

		for _, table := range []string{"gamer_skills", "games", "gamers"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	}
}

func ClearMemory(store *repositories.MemoryStore) ClearFunc {
	return func(context.Context) error {
		store.Reset()
		return nil
	}
}
