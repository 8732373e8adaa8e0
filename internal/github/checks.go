package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// FindCheckRun returns the check run with the given name on a commit,
// or nil if no such check exists yet.
func (c *client) FindCheckRun(ctx context.Context, repo, ref, name string) (*gh.CheckRun, error) {
	results, resp, err := c.github.Checks.ListCheckRunsForRef(ctx, c.org, repo, ref, &gh.ListCheckRunsOptions{
		CheckName: gh.Ptr(name),
		Filter:    gh.Ptr("all"),
	})
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err != nil {
		return nil, c.logRateLimit(fmt.Errorf("listing check runs on %s@%s: %w", repo, ref, err))
	}
	if len(results.CheckRuns) == 0 {
		return nil, nil
	}
	return results.CheckRuns[0], nil
}

func (c *client) CreateCheckRun(ctx context.Context, repo, headSHA, name, conclusion string) (*gh.CheckRun, error) {
	check, _, err := c.github.Checks.CreateCheckRun(ctx, c.org, repo, gh.CreateCheckRunOptions{
		Name:        name,
		HeadSHA:     headSHA,
		Status:      gh.Ptr("completed"),
		Conclusion:  gh.Ptr(conclusion),
		CompletedAt: &gh.Timestamp{Time: time.Now()},
	})
	if err != nil {
		return nil, c.logRateLimit(fmt.Errorf("creating check run %q on %s@%s: %w", name, repo, headSHA, err))
	}
	return check, nil
}

func (c *client) UpdateCheckRun(ctx context.Context, repo string, checkID int64, name, conclusion string) (*gh.CheckRun, error) {
	check, _, err := c.github.Checks.UpdateCheckRun(ctx, c.org, repo, checkID, gh.UpdateCheckRunOptions{
		Name:        name,
		Status:      gh.Ptr("completed"),
		Conclusion:  gh.Ptr(conclusion),
		CompletedAt: &gh.Timestamp{Time: time.Now()},
	})
	if err != nil {
		return nil, c.logRateLimit(fmt.Errorf("updating check run %d in %s: %w", checkID, repo, err))
	}
	return check, nil
}
