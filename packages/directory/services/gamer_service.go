package services

import (
	"context"
	"errors"
	"fmt"

	"gaming-directory/packages/directory/models"
	"gaming-directory/packages/directory/repositories"
)

type GamerService struct {
	gamers repositories.GamerRepository
}

func NewGamerService(gamers repositories.GamerRepository) *GamerService {
	return &GamerService{
		gamers: gamers,
	}
}

func (s *GamerService) ListGamers(ctx context.Context) ([]models.Gamer, error) {
	gamers, err := s.gamers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gamers: %w", err)
	}

	return gamers, nil
}

func (s *GamerService) GetGamer(ctx context.Context, id int64) (*models.Gamer, error) {
	gamerID, err := validateID(id)
	if err != nil {
		return nil, err
	}

	gamer, err := s.gamers.GetByID(ctx, gamerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Gamer not found with ID: %d", id)
		}
		return nil, fmt.Errorf("failed to get gamer %d: %w", id, err)
	}

	return gamer, nil
}

// CreateGamer checks the username first for a friendly error; the unique index
// still decides when two requests race past the check.
func (s *GamerService) CreateGamer(ctx context.Context, username, country string) (*models.Gamer, error) {
	username, err := requireText("Username", username, UsernameMinLength, UsernameMaxLength)
	if err != nil {
		return nil, err
	}
	country, err = requireText("Country", country, CountryMinLength, CountryMaxLength)
	if err != nil {
		return nil, err
	}

	if _, err := s.gamers.GetByUsername(ctx, username); err == nil {
		return nil, conflict("Username already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	gamer := &models.Gamer{
		Username: username,
		Country:  country,
	}

	if err := s.gamers.Create(ctx, gamer); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, conflict("Username already exists")
		}
		return nil, fmt.Errorf("failed to create gamer: %w", err)
	}

	return gamer, nil
}

func (s *GamerService) FindByUsername(ctx context.Context, username string) (*models.Gamer, error) {
	gamer, err := s.gamers.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, notFound("Gamer not found with username: %s", username)
		}
		return nil, fmt.Errorf("failed to find gamer %q: %w", username, err)
	}

	return gamer, nil
}
