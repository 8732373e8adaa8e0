package evaluator

import (
	"context"
	"fmt"
	"strconv"

	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/models"
)

// RepoSetting checks that a named repository setting equals an
// expected value. A setting that is disabled or inapplicable for the
// repository produces no violation — that is not the same thing as a
// wrong value.
type RepoSetting struct {
	gh github.Client
}

func NewRepoSetting(gh github.Client) *RepoSetting {
	return &RepoSetting{gh: gh}
}

func (e *RepoSetting) PolicyType() string { return "repo_setting" }

func (e *RepoSetting) Evaluate(ctx context.Context, repo models.Repository, cfg models.PolicyConfig) (*Result, error) {
	if cfg.Setting == "" || cfg.Expected == "" {
		return nil, fmt.Errorf("repo_setting policy %q needs both setting and expected", cfg.Name)
	}

	actual, applicable, err := e.currentValue(ctx, repo, cfg.Setting)
	if err != nil {
		return nil, err
	}
	if !applicable {
		return &Result{}, nil
	}

	if actual != cfg.Expected {
		return &Result{
			Violated: true,
			Detail:   fmt.Sprintf("setting %q is %q, expected %q", cfg.Setting, actual, cfg.Expected),
		}, nil
	}
	return &Result{}, nil
}

func (e *RepoSetting) currentValue(ctx context.Context, repo models.Repository, setting string) (string, bool, error) {
	if setting == "allowed_actions" {
		perms, found, err := e.gh.GetActionsPermissions(ctx, repo.Name)
		if err != nil {
			return "", false, err
		}
		if !found || !perms.GetEnabled() {
			return "", false, nil
		}
		return perms.GetAllowedActions(), true, nil
	}

	repository, found, err := e.gh.GetRepository(ctx, repo.Name)
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}

	switch setting {
	case "default_branch":
		return repository.GetDefaultBranch(), repository.DefaultBranch != nil, nil
	case "visibility":
		return repository.GetVisibility(), repository.Visibility != nil, nil
	case "delete_branch_on_merge":
		return boolValue(repository.DeleteBranchOnMerge)
	case "allow_squash_merge":
		return boolValue(repository.AllowSquashMerge)
	case "allow_merge_commit":
		return boolValue(repository.AllowMergeCommit)
	case "allow_rebase_merge":
		return boolValue(repository.AllowRebaseMerge)
	case "has_issues":
		return boolValue(repository.HasIssues)
	case "has_wiki":
		return boolValue(repository.HasWiki)
	default:
		return "", false, fmt.Errorf("unknown repository setting %q", setting)
	}
}

func boolValue(value *bool) (string, bool, error) {
	if value == nil {
		return "", false, nil
	}
	return strconv.FormatBool(*value), true, nil
}
