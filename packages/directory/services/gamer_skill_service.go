package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/repositories"
)

type GamerSkillService struct {
	skills       repositories.GamerSkillRepository
	gamerService *GamerService
	gameService  *GameService
}

func NewGamerSkillService(skills repositories.GamerSkillRepository, gamerService *GamerService, gameService *GameService) *GamerSkillService {
	return &GamerSkillService{
		skills:       skills,
		gamerService: gamerService,
		gameService:  gameService,
	}
}

// LinkGamerToGame creates the skill for the (gamer, game) pair or, when one
// already exists, replaces its level. The boolean reports whether a new record
// was created.
func (s *GamerSkillService) LinkGamerToGame(ctx context.Context, username, gameName, level string) (*models.GamerSkill, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, invalidArgument("Username is required")
	}
	gameName = strings.TrimSpace(gameName)
	if gameName == "" {
		return nil, false, invalidArgument("Game name is required")
	}
	parsedLevel, err := parseRequiredLevel(level)
	if err != nil {
		return nil, false, err
	}

	gamer, err := s.gamerService.FindByUsername(ctx, username)
	if err != nil {
		return nil, false, err
	}
	game, err := s.gameService.FindByName(ctx, gameName)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.skills.GetByGamerAndGame(ctx, gamer.ID, game.ID)
	switch {
	case err == nil:
		skill, err := s.updateLevel(ctx, existing, parsedLevel)
		return skill, false, err
	case !errors.Is(err, repositories.ErrNotFound):
		return nil, false, fmt.Errorf("failed to look up gamer skill: %w", err)
	}

	skill := &models.GamerSkill{
		GamerID: gamer.ID,
		GameID:  game.ID,
		Level:   parsedLevel,
		Gamer:   *gamer,
		Game:    *game,
	}

	err = s.skills.Create(ctx, skill)
	switch {
	case err == nil:
		return skill, true, nil
	case errors.Is(err, repositories.ErrDuplicate):
		// a concurrent link inserted the pair first, so this request becomes the update
		existing, err := s.skills.GetByGamerAndGame(ctx, gamer.ID, game.ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to reload gamer skill: %w", err)
		}
		skill, err := s.updateLevel(ctx, existing, parsedLevel)
		return skill, false, err
	case errors.Is(err, repositories.ErrForeignKey):
		return nil, false, notFound("Gamer or game no longer exists")
	default:
		return nil, false, fmt.Errorf("failed to create gamer skill: %w", err)
	}
}

func (s *GamerSkillService) updateLevel(ctx context.Context, skill *models.GamerSkill, level models.Level) (*models.GamerSkill, error) {
	skill.Level = level
	if err := s.skills.UpdateLevel(ctx, skill); err != nil {
		return nil, fmt.Errorf("failed to update gamer skill %d: %w", skill.ID, err)
	}
	return skill, nil
}

// GetGamersByLevelAndGame returns an empty slice, not an error, when nothing matches.
func (s *GamerSkillService) GetGamersByLevelAndGame(ctx context.Context, gameName, level string) ([]models.GamerSkill, error) {
	gameName = strings.TrimSpace(gameName)
	if gameName == "" {
		return nil, invalidArgument("Game name is required")
	}
	parsedLevel, err := parseRequiredLevel(level)
	if err != nil {
		return nil, err
	}

	skills, err := s.skills.FindByGameNameAndLevel(ctx, gameName, parsedLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to find gamers by level: %w", err)
	}

	return skills, nil
}

// SearchGamers combines the given filters with AND. A nil or blank filter matches everything.
func (s *GamerSkillService) SearchGamers(ctx context.Context, level, gameName, country *string) ([]models.GamerSkill, error) {
	var filter models.SkillFilter

	if value := optionalText(level); value != nil {
		parsed, err := models.ParseLevel(*value)
		if err != nil {
			return nil, invalidArgument("%s", err.Error())
		}
		filter.Level = &parsed
	}
	filter.GameName = optionalText(gameName)
	filter.Country = optionalText(country)

	skills, err := s.skills.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search gamers: %w", err)
	}

	return skills, nil
}

func (s *GamerSkillService) ListGamerSkills(ctx context.Context) ([]models.GamerSkill, error) {
	skills, err := s.skills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gamer skills: %w", err)
	}

	return skills, nil
}

func (s *GamerSkillService) GetGamerSkill(ctx context.Context, id int64) (*models.GamerSkill, error) {
	skillID, err := validateID(id)
	if err != nil {
		return nil, err
	}

	skill, err := s.skills.GetByID(ctx, skillID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Gamer skill not found with ID: %d", id)
		}
		return nil, fmt.Errorf("failed to get gamer skill %d: %w", id, err)
	}

	return skill, nil
}

func parseRequiredLevel(level string) (models.Level, error) {
	if strings.TrimSpace(level) == "" {
		return "", invalidArgument("Level is required")
	}

	parsed, err := models.ParseLevel(level)
	if err != nil {
		return "", invalidArgument("%s", err.Error())
	}

	return parsed, nil
}

func optionalText(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
