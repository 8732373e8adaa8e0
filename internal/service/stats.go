package service

import (
	"context"

	"github.com/repofleet/compliance-bot/internal/store"
	"github.com/repofleet/compliance-bot/models"
)

// StatsService exposes the fleet compliance rollup to the HTTP layer.
type StatsService interface {
	Summary(ctx context.Context) (*models.ComplianceSummary, error)
}

type statsService struct {
	store store.Store
}

func NewStatsService(st store.Store) StatsService {
	return &statsService{store: st}
}

func (s *statsService) Summary(ctx context.Context) (*models.ComplianceSummary, error) {
	return s.store.ComplianceSummary(ctx)
}
