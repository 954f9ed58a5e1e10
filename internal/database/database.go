package database

import (
	"fmt"
	"time"

	"projextpal-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// SkipMigrate leaves the schema untouched, for deployments that run
	// migrations out of band.
	SkipMigrate bool
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(AllModels()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

// AllModels lists every persisted model, parents before children.
func AllModels() []interface{} {
	return []interface{}{
		&models.Company{},
		&models.User{},
		&models.AuthToken{},
		&models.Portfolio{},
		&models.Programme{},
		&models.Project{},
		&models.Dependency{},
		&models.Resource{},
		&models.Milestone{},
		&models.Iteration{},
		&models.BacklogItem{},
		&models.DailyUpdate{},
		&models.DoDItem{},
		&models.Board{},
		&models.Column{},
		&models.Card{},
		&models.WorkPolicy{},
		&models.Stage{},
		&models.Product{},
		&models.ProgramComponent{},
		&models.Tranche{},
		&models.Benefit{},
		&models.BenefitRealization{},
		&models.Blueprint{},
		&models.ART{},
		&models.ProgramIncrement{},
		&models.PIObjective{},
		&models.ARTSyncMeeting{},
		&models.DMAICRecord{},
		&models.SixSigmaMetric{},
		&models.HypothesisTest{},
		&models.DoExperiment{},
		&models.SPCChart{},
		&models.ControlPlan{},
		&models.HybridConfig{},
		&models.HybridArtifact{},
		&models.AuditLog{},
	}
}
