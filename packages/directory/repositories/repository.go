package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gaming-directory/packages/directory/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	ErrForeignKey = errors.New("referenced record does not exist")
)

type GamerRepository interface {
	List(ctx context.Context) ([]models.Gamer, error)
	GetByID(ctx context.Context, id uint) (*models.Gamer, error)
	GetByUsername(ctx context.Context, username string) (*models.Gamer, error)
	Create(ctx context.Context, gamer *models.Gamer) error
	Count(ctx context.Context) (int64, error)
}

type GameRepository interface {
	List(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id uint) (*models.Game, error)
	GetByName(ctx context.Context, name string) (*models.Game, error)
	Create(ctx context.Context, game *models.Game) error
	Count(ctx context.Context) (int64, error)
}

// GamerSkillRepository returns skills with their Gamer and Game loaded.
type GamerSkillRepository interface {
	List(ctx context.Context) ([]models.GamerSkill, error)
	GetByID(ctx context.Context, id uint) (*models.GamerSkill, error)
	GetByGamerAndGame(ctx context.Context, gamerID, gameID uint) (*models.GamerSkill, error)
	Create(ctx context.Context, skill *models.GamerSkill) error
	UpdateLevel(ctx context.Context, skill *models.GamerSkill) error
	FindByGameNameAndLevel(ctx context.Context, gameName string, level models.Level) ([]models.GamerSkill, error)
	Search(ctx context.Context, filter models.SkillFilter) ([]models.GamerSkill, error)
	Count(ctx context.Context) (int64, error)
	CountByLevel(ctx context.Context) (map[models.Level]int64, error)
}

// translateError maps driver and gorm errors onto the repository errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", ErrForeignKey, pgErr.ConstraintName)
		}
	}

	// sqlite reports constraint failures only through the message
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}

	return err
}
