package services

import (
	"context"
	"fmt"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/repositories"
)

type StatsService struct {
	gamers repositories.GamerRepository
	games  repositories.GameRepository
	skills repositories.GamerSkillRepository
}

func NewStatsService(gamers repositories.GamerRepository, games repositories.GameRepository, skills repositories.GamerSkillRepository) *StatsService {
	return &StatsService{
		gamers: gamers,
		games:  games,
		skills: skills,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	var err error

	if stats.TotalGamers, err = s.gamers.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count gamers: %w", err)
	}
	if stats.TotalGames, err = s.games.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}
	if stats.TotalSkills, err = s.skills.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count gamer skills: %w", err)
	}
	if stats.SkillsByLevel, err = s.skills.CountByLevel(ctx); err != nil {
		return nil, fmt.Errorf("failed to count gamer skills by level: %w", err)
	}

	return &stats, nil
}
