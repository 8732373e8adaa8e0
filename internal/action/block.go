package action

import (
	"context"

	"github.com/repofleet/compliance-bot/models"
)

const defaultCheckName = "compliance/policy-bot"

// blockPRs reconciles the compliance status check on each target PR's
// head commit. The conclusion is computed fresh from whether the
// policy is currently violated — never from the check's previous
// state — so repeated deliveries converge instead of drifting, and a
// resolved violation unblocks the PR on its next event.
func (e *Executor) blockPRs(ctx context.Context, repo models.Repository, cfg models.PolicyConfig, target *PullRequestTarget, violated bool) []outcome {
	name := defaultCheckName
	if cfg.Check != nil && cfg.Check.Name != "" {
		name = cfg.Check.Name
	}

	conclusion := "success"
	if violated {
		conclusion = "failure"
	}

	targets, err := e.resolveTargets(ctx, repo, target)
	if err != nil {
		return []outcome{failed("resolving target pull requests: %v", err)}
	}
	if len(targets) == 0 {
		return []outcome{skipped("no open pull requests")}
	}

	outcomes := make([]outcome, 0, len(targets))
	for _, t := range targets {
		outcomes = append(outcomes, e.reconcileCheck(ctx, repo, t, name, conclusion))
	}
	return outcomes
}

// reconcileCheck updates the named check in place when it exists and
// creates it otherwise — one check per (head commit, name), always.
func (e *Executor) reconcileCheck(ctx context.Context, repo models.Repository, target PullRequestTarget, name, conclusion string) outcome {
	existing, err := e.gh.FindCheckRun(ctx, repo.Name, target.HeadSHA, name)
	if err != nil {
		return failed("looking up check %q on PR #%d: %v", name, target.Number, err)
	}

	if existing != nil {
		if _, err := e.gh.UpdateCheckRun(ctx, repo.Name, existing.GetID(), name, conclusion); err != nil {
			return failed("updating check %q on PR #%d: %v", name, target.Number, err)
		}
		return success("updated check %q on PR #%d to %s", name, target.Number, conclusion)
	}

	if _, err := e.gh.CreateCheckRun(ctx, repo.Name, target.HeadSHA, name, conclusion); err != nil {
		return failed("creating check %q on PR #%d: %v", name, target.Number, err)
	}
	return success("created check %q on PR #%d with %s", name, target.Number, conclusion)
}
