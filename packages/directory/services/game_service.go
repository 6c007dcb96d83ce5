package services

import (
	"context"
	"errors"
	"fmt"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/repositories"

	"github.com/gosimple/slug"
)

type GameService struct {
	games repositories.GameRepository
}

func NewGameService(games repositories.GameRepository) *GameService {
	return &GameService{
		games: games,
	}
}

func (s *GameService) ListGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

func (s *GameService) GetGame(ctx context.Context, id int64) (*models.Game, error) {
	gameID, err := validateID(id)
	if err != nil {
		return nil, err
	}

	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Game not found with ID: %d", id)
		}
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}

	return game, nil
}

func (s *GameService) CreateGame(ctx context.Context, name string) (*models.Game, error) {
	name, err := requireText("Game name", name, GameNameMinLength, GameNameMaxLength)
	if err != nil {
		return nil, err
	}

	if _, err := s.games.GetByName(ctx, name); err == nil {
		return nil, conflict("Game name already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check game name: %w", err)
	}

	game := &models.Game{
		Name: name,
		Slug: slug.Make(name),
	}

	if err := s.games.Create(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, conflict("Game name already exists")
		}
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return game, nil
}

func (s *GameService) FindByName(ctx context.Context, name string) (*models.Game, error) {
	game, err := s.games.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Game not found with name: %s", name)
		}
		return nil, fmt.Errorf("failed to find game %q: %w", name, err)
	}

	return game, nil
}
