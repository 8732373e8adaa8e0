package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) ListOpenPullRequests(ctx context.Context, repo string) ([]*gh.PullRequest, error) {
	var allPRs []*gh.PullRequest
	opts := &gh.PullRequestListOptions{
		State: "open",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		prs, resp, err := c.github.PullRequests.List(ctx, c.org, repo, opts)
		if err != nil {
			return nil, c.logRateLimit(fmt.Errorf("listing pull requests in %s: %w", repo, err))
		}

		allPRs = append(allPRs, prs...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allPRs, nil
}

func (c *client) GetPullRequest(ctx context.Context, repo string, number int) (*gh.PullRequest, error) {
	pr, _, err := c.github.PullRequests.Get(ctx, c.org, repo, number)
	if err != nil {
		return nil, c.logRateLimit(fmt.Errorf("getting pull request %s#%d: %w", repo, number, err))
	}
	return pr, nil
}

// ListPRComments returns the conversation comments on a pull request.
// PR conversation comments live on the issues API.
func (c *client) ListPRComments(ctx context.Context, repo string, number int) ([]*gh.IssueComment, error) {
	var allComments []*gh.IssueComment
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		comments, resp, err := c.github.Issues.ListComments(ctx, c.org, repo, number, opts)
		if err != nil {
			return nil, c.logRateLimit(fmt.Errorf("listing comments on %s#%d: %w", repo, number, err))
		}

		allComments = append(allComments, comments...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allComments, nil
}

func (c *client) CreatePRComment(ctx context.Context, repo string, number int, body string) (*gh.IssueComment, error) {
	comment, _, err := c.github.Issues.CreateComment(ctx, c.org, repo, number, &gh.IssueComment{
		Body: gh.Ptr(body),
	})
	if err != nil {
		return nil, c.logRateLimit(fmt.Errorf("commenting on %s#%d: %w", repo, number, err))
	}
	return comment, nil
}
