package action

import (
	"context"
	"fmt"

	"github.com/repofleet/compliance-bot/models"
)

const defaultIssueLabel = "compliance"

// createIssue files a remediation issue unless an open issue with the
// same title already carries the primary label. The duplicate check
// runs before the create so re-processing the same violation is a
// no-op.
func (e *Executor) createIssue(ctx context.Context, repo models.Repository, cfg models.PolicyConfig) outcome {
	title, body, labels := issueParams(cfg)

	existing, err := e.gh.ListOpenIssues(ctx, repo.Name, labels[0])
	if err != nil {
		return failed("listing open issues: %v", err)
	}
	for _, issue := range existing {
		if issue.GetTitle() == title {
			return skipped("issue already open: %s", issue.GetHTMLURL())
		}
	}

	issue, err := e.gh.CreateIssue(ctx, repo.Name, title, body, labels)
	if err != nil {
		return failed("creating issue: %v", err)
	}
	return success("created issue %s", issue.GetHTMLURL())
}

func issueParams(cfg models.PolicyConfig) (title, body string, labels []string) {
	title = fmt.Sprintf("Compliance: %s", cfg.Name)
	body = fmt.Sprintf("This repository violates the %q compliance policy.\n\n%s", cfg.Name, cfg.Description)
	labels = []string{defaultIssueLabel}

	if cfg.Issue != nil {
		if cfg.Issue.Title != "" {
			title = cfg.Issue.Title
		}
		if cfg.Issue.Body != "" {
			body = cfg.Issue.Body
		}
		if len(cfg.Issue.Labels) > 0 {
			labels = cfg.Issue.Labels
		}
	}
	return title, body, labels
}
