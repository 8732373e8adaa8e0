package action

import (
	"context"
	"errors"
	"net/http"

	gh "github.com/google/go-github/v80/github"

	"github.com/repofleet/compliance-bot/models"
)

// archiveRepo archives the repository. The settings read comes first:
// an already-archived repository is skipped without any mutating call.
func (e *Executor) archiveRepo(ctx context.Context, repo models.Repository) outcome {
	current, found, err := e.gh.GetRepository(ctx, repo.Name)
	if err != nil {
		return failed("reading repository settings: %v", err)
	}
	if !found {
		e.log.WithField("repo", repo.Name).Warn("repository to archive no longer exists upstream")
		return failed("repository not found upstream")
	}
	if current.GetArchived() {
		return skipped("repository is already archived")
	}

	if err := e.gh.ArchiveRepository(ctx, repo.Name); err != nil {
		var ghErr *gh.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil {
			switch ghErr.Response.StatusCode {
			case http.StatusNotFound:
				e.log.WithField("repo", repo.Name).Warn("repository vanished before archive")
				return failed("repository not found upstream")
			case http.StatusForbidden:
				e.log.WithField("repo", repo.Name).Warn("insufficient permission to archive repository")
				return failed("permission denied archiving repository")
			}
		}
		return failed("archiving repository: %v", err)
	}

	return success("repository archived")
}
