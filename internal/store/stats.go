package store

import (
	"context"

	"github.com/repofleet/compliance-bot/models"
)

// ComplianceSummary computes the fleet rollup against the latest
// completed scan. An empty fleet is 100% compliant by definition, and
// a fleet with no completed scan yet reports zero violations rather
// than guessing.
func (s *gormStore) ComplianceSummary(ctx context.Context) (*models.ComplianceSummary, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Repository{}).Count(&total).Error; err != nil {
		return nil, err
	}

	summary := &models.ComplianceSummary{
		TotalRepos:     total,
		CompliantRepos: total,
	}

	scan, ok, err := s.LatestCompletedScan(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		summary.ScanID = scan.ID
		summary.ScanCompletedAt = scan.CompletedAt

		var violating int64
		err = s.db.WithContext(ctx).
			Model(&models.Violation{}).
			Where("scan_id = ?", scan.ID).
			Distinct("repository_id").
			Count(&violating).Error
		if err != nil {
			return nil, err
		}
		summary.ViolatingRepos = violating
		summary.CompliantRepos = total - violating
	}

	if total == 0 {
		summary.CompliancePercent = 100
	} else {
		summary.CompliancePercent = 100 * float64(summary.CompliantRepos) / float64(total)
	}

	return summary, nil
}
