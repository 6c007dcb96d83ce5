package models

import "time"

type GamerSkill struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GamerID   uint      `gorm:"not null;uniqueIndex:idx_gamer_skills_gamer_game,priority:1" json:"gamer_id"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_gamer_skills_gamer_game,priority:2;index" json:"game_id"`
	Level     Level     `gorm:"size:20;not null;index" json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Gamer Gamer `gorm:"foreignKey:GamerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Game  Game  `gorm:"foreignKey:GameID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (GamerSkill) TableName() string {
	return "gamer_skills"
}

// SkillFilter holds the optional criteria of a skill search. A nil field matches everything.
type SkillFilter struct {
	Level    *Level
	GameName *string
	Country  *string
}

type LinkGamerSkillRequest struct {
	Username string `json:"username" example:"Joey"`
	GameName string `json:"gameName" example:"Counter-Strike"`
	Level    string `json:"level" example:"PRO"`
}

// GamerSkillResponse is the flat representation of a skill returned to clients.
type GamerSkillResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"Joey"`
	Country  string `json:"country" example:"USA"`
	GameName string `json:"gameName" example:"Counter-Strike"`
	Level    Level  `json:"level" example:"PRO"`
}

type LinkGamerSkillResponse struct {
	GamerSkillResponse
	Message string `json:"message" example:"Gamer skill created successfully"`
}

// NewGamerSkillResponse expects Gamer and Game to be loaded.
func NewGamerSkillResponse(skill GamerSkill) GamerSkillResponse {
	return GamerSkillResponse{
		ID:       skill.ID,
		Username: skill.Gamer.Username,
		Country:  skill.Gamer.Country,
		GameName: skill.Game.Name,
		Level:    skill.Level,
	}
}

func NewGamerSkillResponses(skills []GamerSkill) []GamerSkillResponse {
	responses := make([]GamerSkillResponse, 0, len(skills))
	for _, skill := range skills {
		responses = append(responses, NewGamerSkillResponse(skill))
	}
	return responses
}
