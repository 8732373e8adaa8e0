package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// GetFileContent fetches and decodes a file from the default branch.
// A missing file is found=false with a nil error; callers check the
// boolean instead of special-casing 404s.
func (c *client) GetFileContent(ctx context.Context, repo, path string) (string, bool, error) {
	content, _, resp, err := c.github.Repositories.GetContents(ctx, c.org, repo, path, &gh.RepositoryContentGetOptions{})
	if isNotFound(resp, err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, c.logRateLimit(fmt.Errorf("getting %s in %s: %w", path, repo, err))
	}
	if content == nil {
		// Path resolved to a directory listing.
		return "", false, nil
	}

	decoded, err := content.GetContent()
	if err != nil {
		return "", false, fmt.Errorf("decoding %s in %s: %w", path, repo, err)
	}
	return decoded, true, nil
}
