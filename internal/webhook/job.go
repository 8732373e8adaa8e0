package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/repofleet/compliance-bot/internal/action"
	"github.com/repofleet/compliance-bot/models"
)

// pullRequestJob re-evaluates one repository in response to a PR
// lifecycle event and runs the PR-scoped actions against the specific
// PR and head commit. The evaluation is in-memory: a webhook delivery
// is not a fleet scan and records no Scan row. Processing the same
// delivery twice is safe — comments and checks are duplicate-guarded.
type pullRequestJob struct {
	handler      *Handler
	repoGithubID int64
	repoName     string
	repoFullName string
	prNumber     int
	headSHA      string
}

func (j *pullRequestJob) Name() string {
	return fmt.Sprintf("pull_request/%s#%d", j.repoName, j.prNumber)
}

func (j *pullRequestJob) Execute(ctx context.Context) error {
	h := j.handler

	repo, found, err := h.store.GetRepositoryByGithubID(ctx, j.repoGithubID)
	if err != nil {
		return fmt.Errorf("resolving repository %s: %w", j.repoName, err)
	}
	if !found {
		// Event arrived before the repository's first scan.
		fresh := models.Repository{
			GithubID:   j.repoGithubID,
			Name:       j.repoName,
			FullName:   j.repoFullName,
			LastSeenAt: time.Now(),
		}
		if err := h.store.UpsertRepository(ctx, &fresh); err != nil {
			return fmt.Errorf("registering repository %s: %w", j.repoName, err)
		}
		repo = &fresh
	}

	cfg, err := h.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading compliance config: %w", err)
	}

	findings := h.engine.EvaluateRepository(ctx, *repo, cfg)

	return h.executor.ProcessPullRequest(ctx, *repo, cfg, findings, action.PullRequestTarget{
		Number:  j.prNumber,
		HeadSHA: j.headSHA,
	})
}
