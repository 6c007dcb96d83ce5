package models

import "time"

type Gamer struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:20;not null;uniqueIndex:idx_gamers_username" json:"username"`
	Country   string    `gorm:"size:60;not null;index" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Gamer) TableName() string {
	return "gamers"
}

type CreateGamerRequest struct {
	Username string `json:"username" example:"Joey"`
	Country  string `json:"country" example:"USA"`
}
