package orchestrator

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/internal/action"
	"github.com/repofleet/compliance-bot/internal/evaluator"
	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/internal/jobs"
	"github.com/repofleet/compliance-bot/internal/policy"
	"github.com/repofleet/compliance-bot/internal/store"
	"github.com/repofleet/compliance-bot/models"
)

// Scanner drives one complete fleet evaluation cycle: config load,
// policy and repository sync, evaluation, violation persistence, and
// the hand-off to action processing.
type Scanner struct {
	store    store.Store
	gh       github.Client
	loader   *policy.Loader
	engine   *evaluator.Engine
	executor *action.Executor
	queue    jobs.Queue
	log      *logrus.Logger
}

func NewScanner(st store.Store, ghClient github.Client, loader *policy.Loader, engine *evaluator.Engine, executor *action.Executor, queue jobs.Queue, log *logrus.Logger) *Scanner {
	return &Scanner{
		store:    st,
		gh:       ghClient,
		loader:   loader,
		engine:   engine,
		executor: executor,
		queue:    queue,
		log:      log,
	}
}

// Run executes one scan. Any failure in the scan body marks the scan
// Failed; action processing is enqueued as a separate job after
// completion, so its failures can never reach back into the scan's
// status.
func (s *Scanner) Run(ctx context.Context) error {
	scan, err := s.store.CreateScan(ctx)
	if err != nil {
		return fmt.Errorf("creating scan: %w", err)
	}
	logger := s.log.WithField("scan_id", scan.ID)
	logger.Info("scan started")

	if err := s.runBody(ctx, scan.ID, logger); err != nil {
		logger.WithError(err).Error("scan failed")
		if failErr := s.store.FailScan(ctx, scan.ID); failErr != nil {
			logger.WithError(failErr).Error("marking scan failed")
		}
		return err
	}

	if err := s.store.CompleteScan(ctx, scan.ID); err != nil {
		return fmt.Errorf("marking scan completed: %w", err)
	}
	logger.Info("scan completed")

	scanID := scan.ID
	s.queue.Enqueue(jobs.NewFunc("process_actions", func(ctx context.Context) error {
		return s.executor.ProcessScan(ctx, scanID)
	}))

	return nil
}

func (s *Scanner) runBody(ctx context.Context, scanID uint, logger *logrus.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scan panicked: %v", r)
		}
	}()

	// A scan never runs against a stale or broken config.
	cfg, err := s.loader.ForceRefresh(ctx)
	if err != nil {
		return fmt.Errorf("loading compliance config: %w", err)
	}

	policyRows, err := s.syncPolicies(ctx, cfg)
	if err != nil {
		return err
	}

	fleet, err := s.gh.ListAllRepos(ctx)
	if err != nil {
		return fmt.Errorf("listing fleet: %w", err)
	}

	repos, err := s.syncRepositories(ctx, fleet, logger)
	if err != nil {
		return err
	}

	var violations []models.Violation
	for _, repo := range repos {
		findings := s.engine.EvaluateRepository(ctx, repo, cfg)
		for _, finding := range findings {
			row, ok := policyRows[finding.Policy.Type]
			if !ok {
				continue
			}
			violations = append(violations, models.Violation{
				ScanID:       scanID,
				RepositoryID: repo.ID,
				PolicyID:     row.ID,
				Detail:       finding.Detail,
				DetectedAt:   time.Now(),
			})
		}
	}

	if err := s.store.CreateViolations(ctx, violations); err != nil {
		return fmt.Errorf("persisting violations: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"repos":      len(repos),
		"violations": len(violations),
	}).Info("evaluation finished")
	return nil
}

// syncPolicies upserts every configured policy and returns the rows by
// type. Policies removed from the config are left in place untouched.
func (s *Scanner) syncPolicies(ctx context.Context, cfg *models.ComplianceConfig) (map[string]models.Policy, error) {
	rows := make(map[string]models.Policy, len(cfg.Policies))
	for _, policyCfg := range cfg.Policies {
		row, err := s.store.EnsurePolicy(ctx, &models.Policy{
			Name:        policyCfg.Name,
			Type:        policyCfg.Type,
			Description: policyCfg.Description,
			Actions:     policyCfg.Actions,
		})
		if err != nil {
			return nil, fmt.Errorf("syncing policy %q: %w", policyCfg.Type, err)
		}
		rows[policyCfg.Type] = *row
	}
	return rows, nil
}

// syncRepositories reconciles local rows against the live fleet
// listing: new repositories are inserted as pending, renames update in
// place (matched by the stable upstream id), and repositories gone
// from the listing are deleted with their violations and action logs.
func (s *Scanner) syncRepositories(ctx context.Context, fleet []*gh.Repository, logger *logrus.Entry) ([]models.Repository, error) {
	now := time.Now()
	githubIDs := make([]int64, 0, len(fleet))
	repos := make([]models.Repository, 0, len(fleet))

	for _, upstream := range fleet {
		if upstream == nil || upstream.GetID() == 0 {
			continue
		}
		repo := models.Repository{
			GithubID:   upstream.GetID(),
			Name:       upstream.GetName(),
			FullName:   upstream.GetFullName(),
			Archived:   upstream.GetArchived(),
			LastSeenAt: now,
		}
		if err := s.store.UpsertRepository(ctx, &repo); err != nil {
			return nil, fmt.Errorf("syncing repository %s: %w", upstream.GetName(), err)
		}
		githubIDs = append(githubIDs, repo.GithubID)
		repos = append(repos, repo)
	}

	deleted, err := s.store.DeleteRepositoriesNotIn(ctx, githubIDs)
	if err != nil {
		return nil, fmt.Errorf("pruning repositories: %w", err)
	}
	if deleted > 0 {
		logger.WithField("deleted", deleted).Info("pruned repositories no longer present upstream")
	}

	return repos, nil
}
