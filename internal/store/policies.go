package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/repofleet/compliance-bot/models"
)

// EnsurePolicy inserts the policy if its type is new, otherwise
// refreshes the name/description/action-list snapshot on the existing
// row. Policies are never deleted here: rows removed from the config
// go stale but keep their historical violation references intact.
func (s *gormStore) EnsurePolicy(ctx context.Context, policy *models.Policy) (*models.Policy, error) {
	var existing models.Policy
	err := s.db.WithContext(ctx).Where("type = ?", policy.Type).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.WithContext(ctx).Create(policy).Error; err != nil {
			return nil, err
		}
		return policy, nil
	}
	if err != nil {
		return nil, err
	}

	existing.Name = policy.Name
	existing.Description = policy.Description
	existing.Actions = policy.Actions
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *gormStore) GetPolicyByType(ctx context.Context, policyType string) (*models.Policy, bool, error) {
	var policy models.Policy
	err := s.db.WithContext(ctx).Where("type = ?", policyType).First(&policy).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &policy, true, nil
}
