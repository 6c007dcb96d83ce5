package migrations

import (
	"fmt"
	"time"

	"gaming-directory/packages/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

type Migrator struct {
	db         *gorm.DB
	log        *logger.Logger
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB, log *logger.Logger) (*Migrator, error) {
	if err := db.AutoMigrate(&Migration{}); err != nil {
		return nil, fmt.Errorf("failed to create migrations table: %w", err)
	}
	return &Migrator{
		db:         db,
		log:        log,
		migrations: []MigrationDefinition{},
	}, nil
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

// Migrate runs every pending migration in registration order. All migrations
// applied by one call share a batch number so they roll back together.
func (m *Migrator) Migrate() error {
	m.log.Info("Running database migrations")

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}
	batch++

	applied := 0
	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return err
		}
		if ran {
			continue
		}

		m.log.Info("Migrating", zap.String("migration", migration.Name))

		err = m.db.Transaction(func(tx *gorm.DB) error {
			if err := migration.Up(tx); err != nil {
				return fmt.Errorf("migration %s failed: %w", migration.Name, err)
			}
			record := Migration{Name: migration.Name, Batch: batch}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
			return nil
		})
		if err != nil {
			return err
		}

		applied++
		m.log.Info("Migrated", zap.String("migration", migration.Name))
	}

	m.log.Info("Migration completed successfully", zap.Int("applied", applied))
	return nil
}

// Rollback reverts the given number of batches, newest first.
func (m *Migrator) Rollback(steps int) error {
	if steps <= 0 {
		steps = 1
	}

	m.log.Info("Rolling back migrations", zap.Int("batches", steps))

	batch, err := m.latestBatch()
	if err != nil {
		return err
	}

	for i := 0; i < steps && batch > 0; i++ {
		var records []Migration
		if err := m.db.Where("batch = ?", batch).Order("id DESC").Find(&records).Error; err != nil {
			return fmt.Errorf("failed to load batch %d: %w", batch, err)
		}

		for _, record := range records {
			migration := m.findMigration(record.Name)
			if migration == nil {
				return fmt.Errorf("migration definition not found: %s", record.Name)
			}
			if migration.Down == nil {
				return fmt.Errorf("rollback not defined for migration: %s", record.Name)
			}

			m.log.Info("Rolling back", zap.String("migration", record.Name))

			err := m.db.Transaction(func(tx *gorm.DB) error {
				if err := migration.Down(tx); err != nil {
					return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
				}
				if err := tx.Delete(&record).Error; err != nil {
					return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
				}
				return nil
			})
			if err != nil {
				return err
			}

			m.log.Info("Rolled back", zap.String("migration", record.Name))
		}

		batch--
	}

	m.log.Info("Rollback completed successfully")
	return nil
}

// Status lists applied migrations ordered by batch.
func (m *Migrator) Status() ([]Migration, error) {
	var records []Migration
	if err := m.db.Order("batch ASC, id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}
	return records, nil
}

// Pending lists registered migrations that have not been applied.
func (m *Migrator) Pending() ([]string, error) {
	var pending []string
	for _, migration := range m.migrations {
		ran, err := m.hasRun(migration.Name)
		if err != nil {
			return nil, err
		}
		if !ran {
			pending = append(pending, migration.Name)
		}
	}
	return pending, nil
}

func (m *Migrator) hasRun(name string) (bool, error) {
	var count int64
	if err := m.db.Model(&Migration{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check migration %s: %w", name, err)
	}
	return count > 0, nil
}

func (m *Migrator) latestBatch() (int, error) {
	var batch int
	if err := m.db.Model(&Migration{}).Select("COALESCE(MAX(batch), 0)").Scan(&batch).Error; err != nil {
		return 0, fmt.Errorf("failed to read latest batch: %w", err)
	}
	return batch, nil
}

func (m *Migrator) findMigration(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
