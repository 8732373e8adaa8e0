package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// ListAllRepos pages through the org's full repository listing.
func (c *client) ListAllRepos(ctx context.Context) ([]*gh.Repository, error) {
	var allRepos []*gh.Repository
	opts := &gh.RepositoryListByOrgOptions{
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		repos, resp, err := c.github.Repositories.ListByOrg(ctx, c.org, opts)
		if err != nil {
			return nil, c.logRateLimit(fmt.Errorf("listing repositories: %w", err))
		}

		allRepos = append(allRepos, repos...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRepos, nil
}

// GetRepository fetches one repository's settings. A repository that
// no longer exists upstream is reported as found=false, not an error.
func (c *client) GetRepository(ctx context.Context, repo string) (*gh.Repository, bool, error) {
	repository, resp, err := c.github.Repositories.Get(ctx, c.org, repo)
	if isNotFound(resp, err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, c.logRateLimit(fmt.Errorf("getting repository %s: %w", repo, err))
	}
	return repository, true, nil
}

// ArchiveRepository archives the repository. Idempotency (skipping an
// already-archived repository) is the caller's responsibility.
func (c *client) ArchiveRepository(ctx context.Context, repo string) error {
	_, _, err := c.github.Repositories.Edit(ctx, c.org, repo, &gh.Repository{
		Archived: gh.Ptr(true),
	})
	if err != nil {
		return c.logRateLimit(fmt.Errorf("archiving repository %s: %w", repo, err))
	}
	return nil
}

// GetRepositoryTree returns the blob paths of the repository's default
// branch tree. An empty or missing repository yields an empty slice.
func (c *client) GetRepositoryTree(ctx context.Context, repo string) ([]string, error) {
	tree, resp, err := c.github.Git.GetTree(ctx, c.org, repo, "HEAD", true)
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err != nil {
		// 409 means the repository has no commits yet.
		if resp != nil && resp.StatusCode == 409 {
			return nil, nil
		}
		return nil, c.logRateLimit(fmt.Errorf("getting tree for %s: %w", repo, err))
	}

	var paths []string
	for _, entry := range tree.Entries {
		if entry.GetType() == "blob" {
			paths = append(paths, entry.GetPath())
		}
	}
	return paths, nil
}

// GetActionsPermissions fetches the repository's Actions permission
// settings. found=false covers both a missing repository and Actions
// being unavailable for it.
func (c *client) GetActionsPermissions(ctx context.Context, repo string) (*gh.ActionsPermissionsRepository, bool, error) {
	perms, resp, err := c.github.Repositories.GetActionsPermissions(ctx, c.org, repo)
	if isNotFound(resp, err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, c.logRateLimit(fmt.Errorf("getting actions permissions for %s: %w", repo, err))
	}
	return perms, true, nil
}
