package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"gaming-directory/packages/directory/models"
)

// MemoryStore keeps gamers, games and skills in maps and enforces the same
// unique and foreign key constraints as the SQL schema.
type MemoryStore struct {
	mu     sync.RWMutex
	gamers map[uint]models.Gamer
	games  map[uint]models.Game
	skills map[uint]models.GamerSkill
	nextID struct {
		gamer, game, skill uint
	}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		gamers: make(map[uint]models.Gamer),
		games:  make(map[uint]models.Game),
		skills: make(map[uint]models.GamerSkill),
	}
}

func (s *MemoryStore) Gamers() *MemoryGamerRepository {
	return &MemoryGamerRepository{store: s}
}

func (s *MemoryStore) Games() *MemoryGameRepository {
	return &MemoryGameRepository{store: s}
}

func (s *MemoryStore) GamerSkills() *MemoryGamerSkillRepository {
	return &MemoryGamerSkillRepository{store: s}
}

// Reset drops every record and restarts identifiers at 1.
func (s *MemoryStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gamers = make(map[uint]models.Gamer)
	s.games = make(map[uint]models.Game)
	s.skills = make(map[uint]models.GamerSkill)
	s.nextID.gamer, s.nextID.game, s.nextID.skill = 0, 0, 0
}

// hydrate must be called with the lock held.
func (s *MemoryStore) hydrate(skill models.GamerSkill) models.GamerSkill {
	skill.Gamer = s.gamers[skill.GamerID]
	skill.Game = s.games[skill.GameID]
	return skill
}

func (s *MemoryStore) collectSkills(match func(models.GamerSkill) bool) []models.GamerSkill {
	skills := make([]models.GamerSkill, 0)
	for _, skill := range s.skills {
		skill = s.hydrate(skill)
		if match(skill) {
			skills = append(skills, skill)
		}
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].ID < skills[j].ID })
	return skills
}

type MemoryGamerRepository struct {
	store *MemoryStore
}

func (r *MemoryGamerRepository) List(ctx context.Context) ([]models.Gamer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	gamers := make([]models.Gamer, 0, len(r.store.gamers))
	for _, gamer := range r.store.gamers {
		gamers = append(gamers, gamer)
	}
	sort.Slice(gamers, func(i, j int) bool { return gamers[i].ID < gamers[j].ID })
	return gamers, nil
}

func (r *MemoryGamerRepository) GetByID(ctx context.Context, id uint) (*models.Gamer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	gamer, ok := r.store.gamers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &gamer, nil
}

func (r *MemoryGamerRepository) GetByUsername(ctx context.Context, username string) (*models.Gamer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, gamer := range r.store.gamers {
		if gamer.Username == username {
			return &gamer, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryGamerRepository) Create(ctx context.Context, gamer *models.Gamer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.gamers {
		if existing.Username == gamer.Username {
			return ErrDuplicate
		}
	}

	r.store.nextID.gamer++
	now := time.Now()
	gamer.ID = r.store.nextID.gamer
	gamer.CreatedAt, gamer.UpdatedAt = now, now
	r.store.gamers[gamer.ID] = *gamer
	return nil
}

func (r *MemoryGamerRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.gamers)), nil
}

type MemoryGameRepository struct {
	store *MemoryStore
}

func (r *MemoryGameRepository) List(ctx context.Context) ([]models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	games := make([]models.Game, 0, len(r.store.games))
	for _, game := range r.store.games {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games, nil
}

func (r *MemoryGameRepository) GetByID(ctx context.Context, id uint) (*models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	game, ok := r.store.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &game, nil
}

func (r *MemoryGameRepository) GetByName(ctx context.Context, name string) (*models.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, game := range r.store.games {
		if game.Name == name {
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryGameRepository) Create(ctx context.Context, game *models.Game) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.games {
		if existing.Name == game.Name {
			return ErrDuplicate
		}
	}

	r.store.nextID.game++
	now := time.Now()
	game.ID = r.store.nextID.game
	game.CreatedAt, game.UpdatedAt = now, now
	r.store.games[game.ID] = *game
	return nil
}

func (r *MemoryGameRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.games)), nil
}

type MemoryGamerSkillRepository struct {
	store *MemoryStore
}

func (r *MemoryGamerSkillRepository) List(ctx context.Context) ([]models.GamerSkill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.collectSkills(func(models.GamerSkill) bool { return true }), nil
}

func (r *MemoryGamerSkillRepository) GetByID(ctx context.Context, id uint) (*models.GamerSkill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	skill, ok := r.store.skills[id]
	if !ok {
		return nil, ErrNotFound
	}
	skill = r.store.hydrate(skill)
	return &skill, nil
}

func (r *MemoryGamerSkillRepository) GetByGamerAndGame(ctx context.Context, gamerID, gameID uint) (*models.GamerSkill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, skill := range r.store.skills {
		if skill.GamerID == gamerID && skill.GameID == gameID {
			skill = r.store.hydrate(skill)
			return &skill, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryGamerSkillRepository) Create(ctx context.Context, skill *models.GamerSkill) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.gamers[skill.GamerID]; !ok {
		return ErrForeignKey
	}
	if _, ok := r.store.games[skill.GameID]; !ok {
		return ErrForeignKey
	}
	for _, existing := range r.store.skills {
		if existing.GamerID == skill.GamerID && existing.GameID == skill.GameID {
			return ErrDuplicate
		}
	}

	r.store.nextID.skill++
	now := time.Now()
	skill.ID = r.store.nextID.skill
	skill.CreatedAt, skill.UpdatedAt = now, now

	stored := *skill
	stored.Gamer, stored.Game = models.Gamer{}, models.Game{}
	r.store.skills[skill.ID] = stored
	return nil
}

func (r *MemoryGamerSkillRepository) UpdateLevel(ctx context.Context, skill *models.GamerSkill) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.skills[skill.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Level = skill.Level
	stored.UpdatedAt = time.Now()
	r.store.skills[skill.ID] = stored
	return nil
}

func (r *MemoryGamerSkillRepository) FindByGameNameAndLevel(ctx context.Context, gameName string, level models.Level) ([]models.GamerSkill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.collectSkills(func(skill models.GamerSkill) bool {
		return skill.Game.Name == gameName && skill.Level == level
	}), nil
}

func (r *MemoryGamerSkillRepository) Search(ctx context.Context, filter models.SkillFilter) ([]models.GamerSkill, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.collectSkills(func(skill models.GamerSkill) bool {
		if filter.Level != nil && skill.Level != *filter.Level {
			return false
		}
		if filter.GameName != nil && skill.Game.Name != *filter.GameName {
			return false
		}
		if filter.Country != nil && skill.Gamer.Country != *filter.Country {
			return false
		}
		return true
	}), nil
}

func (r *MemoryGamerSkillRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return int64(len(r.store.skills)), nil
}

func (r *MemoryGamerSkillRepository) CountByLevel(ctx context.Context) (map[models.Level]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[models.Level]int64, len(models.AllLevels()))
	for _, level := range models.AllLevels() {
		counts[level] = 0
	}
	for _, skill := range r.store.skills {
		counts[skill.Level]++
	}
	return counts, nil
}
