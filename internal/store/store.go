package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/repofleet/compliance-bot/models"
)

// Store is the persistence boundary for the compliance pipeline.
type Store interface {
	// Repositories
	UpsertRepository(ctx context.Context, repo *models.Repository) error
	ListRepositories(ctx context.Context) ([]models.Repository, error)
	GetRepositoryByGithubID(ctx context.Context, githubID int64) (*models.Repository, bool, error)
	DeleteRepositoriesNotIn(ctx context.Context, githubIDs []int64) (int64, error)

	// Policies
	EnsurePolicy(ctx context.Context, policy *models.Policy) (*models.Policy, error)
	GetPolicyByType(ctx context.Context, policyType string) (*models.Policy, bool, error)

	// Scans
	CreateScan(ctx context.Context) (*models.Scan, error)
	CompleteScan(ctx context.Context, scanID uint) error
	FailScan(ctx context.Context, scanID uint) error
	LatestCompletedScan(ctx context.Context) (*models.Scan, bool, error)

	// Violations
	CreateViolations(ctx context.Context, violations []models.Violation) error
	ViolationsForScan(ctx context.Context, scanID uint) ([]models.Violation, error)
	HasOpenViolation(ctx context.Context, repositoryID uint, policyType string) (bool, error)

	// Action logs
	CreateActionLog(ctx context.Context, entry *models.ActionLog) error
	ListActionLogs(ctx context.Context, repositoryID uint) ([]models.ActionLog, error)

	// Stats
	ComplianceSummary(ctx context.Context) (*models.ComplianceSummary, error)
}

type gormStore struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database and migrates the schema.
func Open(dsn string) (Store, error) {
	if !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Repository{},
		&models.Policy{},
		&models.Scan{},
		&models.Violation{},
		&models.ActionLog{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return &gormStore{db: db}, nil
}
