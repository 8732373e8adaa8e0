package store

import (
	"context"

	"github.com/repofleet/compliance-bot/models"
)

func (s *gormStore) CreateActionLog(ctx context.Context, entry *models.ActionLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *gormStore) ListActionLogs(ctx context.Context, repositoryID uint) ([]models.ActionLog, error) {
	var logs []models.ActionLog
	err := s.db.WithContext(ctx).
		Preload("Policy").
		Where("repository_id = ?", repositoryID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
