package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/repofleet/compliance-bot/models"
)

// UpsertRepository inserts the repository on first observation, or
// updates the mutable attributes in place. Matching is by GithubID so
// an upstream rename updates the existing row instead of creating a
// duplicate.
func (s *gormStore) UpsertRepository(ctx context.Context, repo *models.Repository) error {
	var existing models.Repository
	err := s.db.WithContext(ctx).Where("github_id = ?", repo.GithubID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if repo.Status == "" {
			repo.Status = models.RepoStatusPending
		}
		return s.db.WithContext(ctx).Create(repo).Error
	}
	if err != nil {
		return err
	}

	existing.Name = repo.Name
	existing.FullName = repo.FullName
	existing.Archived = repo.Archived
	existing.LastSeenAt = repo.LastSeenAt
	if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return err
	}
	*repo = existing
	return nil
}

func (s *gormStore) ListRepositories(ctx context.Context) ([]models.Repository, error) {
	var repos []models.Repository
	err := s.db.WithContext(ctx).Order("name").Find(&repos).Error
	return repos, err
}

func (s *gormStore) GetRepositoryByGithubID(ctx context.Context, githubID int64) (*models.Repository, bool, error) {
	var repo models.Repository
	err := s.db.WithContext(ctx).Where("github_id = ?", githubID).First(&repo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &repo, true, nil
}

// DeleteRepositoriesNotIn removes every repository whose GithubID is
// not in the live fleet listing, cascading its violations and action
// logs. The cascade is explicit within one transaction rather than
// relying on the SQLite foreign-key pragma being active.
func (s *gormStore) DeleteRepositoriesNotIn(ctx context.Context, githubIDs []int64) (int64, error) {
	var deleted int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stale []models.Repository
		query := tx.Model(&models.Repository{})
		if len(githubIDs) > 0 {
			query = query.Where("github_id NOT IN ?", githubIDs)
		}
		if err := query.Find(&stale).Error; err != nil {
			return err
		}
		if len(stale) == 0 {
			return nil
		}

		staleIDs := make([]uint, 0, len(stale))
		for _, repo := range stale {
			staleIDs = append(staleIDs, repo.ID)
		}

		if err := tx.Where("repository_id IN ?", staleIDs).Delete(&models.Violation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("repository_id IN ?", staleIDs).Delete(&models.ActionLog{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", staleIDs).Delete(&models.Repository{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})

	return deleted, err
}
