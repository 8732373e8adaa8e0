package action

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/internal/evaluator"
	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/internal/policy"
	"github.com/repofleet/compliance-bot/internal/store"
	"github.com/repofleet/compliance-bot/models"
)

// PullRequestTarget identifies the single PR a webhook-triggered run
// acts on. Scan-mode runs pass no target and fan out to all open PRs.
type PullRequestTarget struct {
	Number  int
	HeadSHA string
}

// outcome is the result of one action attempt. Every outcome becomes
// exactly one ActionLog row.
type outcome struct {
	status  models.ActionStatus
	details string
}

func failed(format string, args ...interface{}) outcome {
	return outcome{status: models.ActionStatusFailed, details: fmt.Sprintf(format, args...)}
}

func skipped(format string, args ...interface{}) outcome {
	return outcome{status: models.ActionStatusSkipped, details: fmt.Sprintf(format, args...)}
}

func success(format string, args ...interface{}) outcome {
	return outcome{status: models.ActionStatusSuccess, details: fmt.Sprintf(format, args...)}
}

// Executor runs the configured remediation actions for violations and
// records one audit row per attempt. Failures are contained per
// action: a failing action never blocks its siblings in the same list
// nor any other violation's actions.
type Executor struct {
	store  store.Store
	gh     github.Client
	loader *policy.Loader
	log    *logrus.Logger
}

func NewExecutor(st store.Store, gh github.Client, loader *policy.Loader, log *logrus.Logger) *Executor {
	return &Executor{store: st, gh: gh, loader: loader, log: log}
}

// ProcessScan executes every configured action for every violation of
// the scan. Runs as a background job after the scan completes; its
// failures never touch the scan's status.
func (e *Executor) ProcessScan(ctx context.Context, scanID uint) error {
	violations, err := e.store.ViolationsForScan(ctx, scanID)
	if err != nil {
		return fmt.Errorf("loading violations for scan %d: %w", scanID, err)
	}

	cfg, err := e.loader.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading compliance config: %w", err)
	}

	for _, violation := range violations {
		policyCfg, ok := policy.FindPolicy(cfg, violation.Policy.Type)
		if !ok {
			e.log.WithFields(logrus.Fields{
				"policy_type": violation.Policy.Type,
				"repo":        violation.Repository.Name,
			}).Warn("violation references a policy absent from config, skipping actions")
			continue
		}

		e.runActions(ctx, violation.Repository, violation.Policy, policyCfg, nil, true)
	}

	return nil
}

// ProcessPullRequest runs the PR-scoped actions after a webhook
// re-evaluation. Comments only go where a violation exists; the
// status check is reconciled for every policy that configures it, so
// a resolved violation flips a previously failing check to success.
func (e *Executor) ProcessPullRequest(ctx context.Context, repo models.Repository, cfg *models.ComplianceConfig, findings []evaluator.Finding, target PullRequestTarget) error {
	violatedTypes := make(map[string]bool, len(findings))
	for _, finding := range findings {
		violatedTypes[finding.Policy.Type] = true
	}

	for _, policyCfg := range cfg.Policies {
		violated := violatedTypes[policyCfg.Type]
		wantComment := violated && policyCfg.Actions.Contains(models.ActionCommentOnPRs)
		wantBlock := policyCfg.Actions.Contains(models.ActionBlockPRs)
		if !wantComment && !wantBlock {
			continue
		}

		policyRow, err := e.store.EnsurePolicy(ctx, &models.Policy{
			Name:        policyCfg.Name,
			Type:        policyCfg.Type,
			Description: policyCfg.Description,
			Actions:     policyCfg.Actions,
		})
		if err != nil {
			e.log.WithError(err).WithField("policy_type", policyCfg.Type).Error("ensuring policy row")
			continue
		}

		if wantComment {
			e.record(ctx, repo, *policyRow, models.ActionCommentOnPRs,
				e.commentOnPRs(ctx, repo, policyCfg, &target))
		}
		if wantBlock {
			e.record(ctx, repo, *policyRow, models.ActionBlockPRs,
				e.blockPRs(ctx, repo, policyCfg, &target, violated))
		}
	}

	return nil
}

func (e *Executor) runActions(ctx context.Context, repo models.Repository, policyRow models.Policy, cfg models.PolicyConfig, target *PullRequestTarget, violated bool) {
	for _, actionID := range cfg.Actions {
		outcomes := e.execute(ctx, actionID, repo, cfg, target, violated)
		e.record(ctx, repo, policyRow, actionID, outcomes)
	}
}

// execute dispatches one action identifier. A panic inside a handler
// is contained here and surfaces as a Failed outcome for this attempt
// only.
func (e *Executor) execute(ctx context.Context, actionID string, repo models.Repository, cfg models.PolicyConfig, target *PullRequestTarget, violated bool) (outcomes []outcome) {
	defer func() {
		if r := recover(); r != nil {
			e.log.WithFields(logrus.Fields{"action": actionID, "repo": repo.Name}).
				Errorf("action panicked: %v", r)
			outcomes = []outcome{failed("action panicked: %v", r)}
		}
	}()

	switch actionID {
	case models.ActionCreateIssue:
		return []outcome{e.createIssue(ctx, repo, cfg)}
	case models.ActionArchiveRepo:
		return []outcome{e.archiveRepo(ctx, repo)}
	case models.ActionCommentOnPRs:
		return e.commentOnPRs(ctx, repo, cfg, target)
	case models.ActionBlockPRs:
		return e.blockPRs(ctx, repo, cfg, target, violated)
	case models.ActionLogOnly:
		return []outcome{success("log-only action, no remediation performed")}
	default:
		e.log.WithFields(logrus.Fields{"action": actionID, "repo": repo.Name}).
			Warn("unknown action identifier, skipping")
		return nil
	}
}

func (e *Executor) record(ctx context.Context, repo models.Repository, policyRow models.Policy, actionID string, outcomes []outcome) {
	for _, o := range outcomes {
		entry := &models.ActionLog{
			RepositoryID: repo.ID,
			PolicyID:     policyRow.ID,
			ActionType:   actionID,
			Status:       o.status,
			Details:      o.details,
		}
		if err := e.store.CreateActionLog(ctx, entry); err != nil {
			e.log.WithError(err).WithFields(logrus.Fields{
				"action": actionID,
				"repo":   repo.Name,
			}).Error("recording action log")
		}
	}
}

// resolveTargets returns the PRs an action applies to: the webhook's
// single PR when present, otherwise every currently open PR.
func (e *Executor) resolveTargets(ctx context.Context, repo models.Repository, target *PullRequestTarget) ([]PullRequestTarget, error) {
	if target != nil {
		return []PullRequestTarget{*target}, nil
	}

	prs, err := e.gh.ListOpenPullRequests(ctx, repo.Name)
	if err != nil {
		return nil, err
	}

	targets := make([]PullRequestTarget, 0, len(prs))
	for _, pr := range prs {
		targets = append(targets, PullRequestTarget{
			Number:  pr.GetNumber(),
			HeadSHA: pr.GetHead().GetSHA(),
		})
	}
	return targets, nil
}
