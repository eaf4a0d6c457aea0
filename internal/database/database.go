package database

import (
	"fmt"
	"time"

	"pokehub-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the GORM logger and the connection pool. Zero values fall
// back to the defaults below.
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 20
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 10
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	return o
}

// Initialize opens a Postgres connection and, unless told otherwise,
// migrates the teams schema.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if o.SkipMigrate {
		return db, nil
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the teams table. Species lookups inside the
// stored rosters go through a GIN index on the jsonb column.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Team{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_teams_pokemon ON teams USING GIN (pokemon jsonb_path_ops)`).Error
	if err != nil {
		return fmt.Errorf("create roster index: %w", err)
	}
	return nil
}
