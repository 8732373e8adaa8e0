package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// ListOpenIssues returns the repository's open issues carrying the
// given label. Pull requests are filtered out: the issues API lists
// them too, but duplicate detection only cares about real issues.
func (c *client) ListOpenIssues(ctx context.Context, repo, label string) ([]*gh.Issue, error) {
	var allIssues []*gh.Issue
	opts := &gh.IssueListByRepoOptions{
		State:  "open",
		Labels: []string{label},
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		issues, resp, err := c.github.Issues.ListByRepo(ctx, c.org, repo, opts)
		if err != nil {
			return nil, c.logRateLimit(fmt.Errorf("listing issues in %s: %w", repo, err))
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			allIssues = append(allIssues, issue)
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	return allIssues, nil
}

func (c *client) CreateIssue(ctx context.Context, repo, title, body string, labels []string) (*gh.Issue, error) {
	issue, _, err := c.github.Issues.Create(ctx, c.org, repo, &gh.IssueRequest{
		Title:  gh.Ptr(title),
		Body:   gh.Ptr(body),
		Labels: &labels,
	})
	if err != nil {
		return nil, c.logRateLimit(fmt.Errorf("creating issue in %s: %w", repo, err))
	}
	return issue, nil
}
