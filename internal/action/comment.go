package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/repofleet/compliance-bot/models"
)

// commentMatchPrefixLen bounds the duplicate-comment check: an
// existing bot comment whose body starts with the first 50 runes of
// the configured message counts as the same comment. This is a
// near-duplicate heuristic, not an exact match — the goal is not
// spamming a PR with minor rewordings.
const commentMatchPrefixLen = 50

func (e *Executor) commentOnPRs(ctx context.Context, repo models.Repository, cfg models.PolicyConfig, target *PullRequestTarget) []outcome {
	message := commentMessage(cfg)

	targets, err := e.resolveTargets(ctx, repo, target)
	if err != nil {
		return []outcome{failed("resolving target pull requests: %v", err)}
	}
	if len(targets) == 0 {
		return []outcome{skipped("no open pull requests")}
	}

	outcomes := make([]outcome, 0, len(targets))
	for _, t := range targets {
		outcomes = append(outcomes, e.commentOnPR(ctx, repo, t.Number, message))
	}
	return outcomes
}

func (e *Executor) commentOnPR(ctx context.Context, repo models.Repository, number int, message string) outcome {
	comments, err := e.gh.ListPRComments(ctx, repo.Name, number)
	if err != nil {
		return failed("listing comments on PR #%d: %v", number, err)
	}

	prefix := messagePrefix(message)
	for _, comment := range comments {
		if comment.GetUser().GetLogin() != e.gh.BotLogin() {
			continue
		}
		if strings.HasPrefix(comment.GetBody(), prefix) {
			return skipped("PR #%d already has a compliance comment", number)
		}
	}

	if _, err := e.gh.CreatePRComment(ctx, repo.Name, number, message); err != nil {
		return failed("commenting on PR #%d: %v", number, err)
	}
	return success("commented on PR #%d", number)
}

func commentMessage(cfg models.PolicyConfig) string {
	if cfg.Comment != nil && cfg.Comment.Message != "" {
		return cfg.Comment.Message
	}
	return fmt.Sprintf("This repository violates the %q compliance policy. Please address the violation before merging.", cfg.Name)
}

func messagePrefix(message string) string {
	runes := []rune(message)
	if len(runes) > commentMatchPrefixLen {
		return string(runes[:commentMatchPrefixLen])
	}
	return message
}
