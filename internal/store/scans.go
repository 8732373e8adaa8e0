package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/repofleet/compliance-bot/models"
)

func (s *gormStore) CreateScan(ctx context.Context) (*models.Scan, error) {
	scan := &models.Scan{
		StartedAt: time.Now(),
		Status:    models.ScanStatusInProgress,
	}
	if err := s.db.WithContext(ctx).Create(scan).Error; err != nil {
		return nil, err
	}
	return scan, nil
}

// CompleteScan marks the scan Completed. The status guard keeps
// terminal states immutable: a scan already marked Failed stays
// Failed.
func (s *gormStore) CompleteScan(ctx context.Context, scanID uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).
		Model(&models.Scan{}).
		Where("id = ? AND status = ?", scanID, models.ScanStatusInProgress).
		Updates(map[string]interface{}{
			"status":       models.ScanStatusCompleted,
			"completed_at": &now,
		}).Error
}

func (s *gormStore) FailScan(ctx context.Context, scanID uint) error {
	now := time.Now()
	return s.db.WithContext(ctx).
		Model(&models.Scan{}).
		Where("id = ? AND status = ?", scanID, models.ScanStatusInProgress).
		Updates(map[string]interface{}{
			"status":       models.ScanStatusFailed,
			"completed_at": &now,
		}).Error
}

// LatestCompletedScan returns the most recently completed scan.
// InProgress and Failed scans never qualify, however recent.
func (s *gormStore) LatestCompletedScan(ctx context.Context) (*models.Scan, bool, error) {
	var scan models.Scan
	err := s.db.WithContext(ctx).
		Where("status = ?", models.ScanStatusCompleted).
		Order("completed_at DESC").
		First(&scan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &scan, true, nil
}
