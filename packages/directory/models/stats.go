package models

type Stats struct {
	TotalGamers   int64           `json:"total_gamers"`
	TotalGames    int64           `json:"total_games"`
	TotalSkills   int64           `json:"total_skills"`
	SkillsByLevel map[Level]int64 `json:"skills_by_level"`
}
