package store

import (
	"context"

	"github.com/repofleet/compliance-bot/models"
)

func (s *gormStore) CreateViolations(ctx context.Context, violations []models.Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Create(&violations).Error
}

// ViolationsForScan returns the scan's violations with their
// repository and policy rows preloaded for the action executor.
func (s *gormStore) ViolationsForScan(ctx context.Context, scanID uint) ([]models.Violation, error) {
	var violations []models.Violation
	err := s.db.WithContext(ctx).
		Preload("Repository").
		Preload("Policy").
		Where("scan_id = ?", scanID).
		Order("id").
		Find(&violations).Error
	return violations, err
}

// HasOpenViolation reports whether the repository violates the given
// policy type in the latest completed scan. InProgress and Failed
// scans are invisible here: the answer is always computed against the
// last full picture of the fleet.
func (s *gormStore) HasOpenViolation(ctx context.Context, repositoryID uint, policyType string) (bool, error) {
	scan, ok, err := s.LatestCompletedScan(ctx)
	if err != nil || !ok {
		return false, err
	}

	var count int64
	err = s.db.WithContext(ctx).
		Model(&models.Violation{}).
		Joins("JOIN policies ON policies.id = violations.policy_id").
		Where("violations.scan_id = ? AND violations.repository_id = ? AND policies.type = ?",
			scan.ID, repositoryID, policyType).
		Count(&count).Error
	return count > 0, err
}
