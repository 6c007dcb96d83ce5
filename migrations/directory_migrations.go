package migrations

import "gorm.io/gorm"

// GetDirectoryMigrations returns the postgres schema for gamers, games and
// their skill links.
func GetDirectoryMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2024_05_01_000000_create_gamers_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS gamers (
						id BIGSERIAL PRIMARY KEY,
						username VARCHAR(20) NOT NULL,
						country VARCHAR(60) NOT NULL,
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_gamers_username ON gamers(username);
					CREATE INDEX IF NOT EXISTS idx_gamers_country ON gamers(country);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS gamers CASCADE;`).Error
			},
		},
		{
			Name: "2024_05_01_000001_create_games_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS games (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(100) NOT NULL,
						slug VARCHAR(120) NOT NULL DEFAULT '',
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW()
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_games_name ON games(name);
					CREATE INDEX IF NOT EXISTS idx_games_slug ON games(slug);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS games CASCADE;`).Error
			},
		},
		{
			Name: "2024_05_01_000002_create_gamer_skills_table",
			Up: func(db *gorm.DB) error {
				return db.Exec(`
					CREATE TABLE IF NOT EXISTS gamer_skills (
						id BIGSERIAL PRIMARY KEY,
						gamer_id BIGINT NOT NULL,
						game_id BIGINT NOT NULL,
						level VARCHAR(20) NOT NULL CHECK (level IN ('NOOB', 'PRO', 'INVINCIBLE')),
						created_at TIMESTAMPTZ DEFAULT NOW(),
						updated_at TIMESTAMPTZ DEFAULT NOW(),
						FOREIGN KEY (gamer_id) REFERENCES gamers(id) ON DELETE CASCADE,
						FOREIGN KEY (game_id) REFERENCES games(id) ON DELETE CASCADE
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_gamer_skills_gamer_game ON gamer_skills(gamer_id, game_id);
					CREATE INDEX IF NOT EXISTS idx_gamer_skills_game_id ON gamer_skills(game_id);
					CREATE INDEX IF NOT EXISTS idx_gamer_skills_level ON gamer_skills(level);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`DROP TABLE IF EXISTS gamer_skills CASCADE;`).Error
			},
		},
	}
}
