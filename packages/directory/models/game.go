package models

import "time"

type Game struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_games_name" json:"name"`
	Slug      string    `gorm:"size:120;index" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Game) TableName() string {
	return "games"
}

type CreateGameRequest struct {
	Name string `json:"name" example:"Counter-Strike"`
}
