package evaluator

import (
	"context"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/models"
)

// FilePresent checks that a required file exists on the default
// branch. The configured path may be a literal path or a doublestar
// glob matched against the repository tree (e.g. "**/CODEOWNERS").
// Existence is the whole check; content is file_field's business.
type FilePresent struct {
	gh github.Client
}

func NewFilePresent(gh github.Client) *FilePresent {
	return &FilePresent{gh: gh}
}

func (e *FilePresent) PolicyType() string { return "file_present" }

func (e *FilePresent) Evaluate(ctx context.Context, repo models.Repository, cfg models.PolicyConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file_present policy %q has no path configured", cfg.Name)
	}

	if isGlob(cfg.Path) {
		return e.evaluateGlob(ctx, repo, cfg)
	}

	_, found, err := e.gh.GetFileContent(ctx, repo.Name, cfg.Path)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Result{Violated: true, Detail: fmt.Sprintf("required file %q is missing", cfg.Path)}, nil
	}
	return &Result{}, nil
}

func (e *FilePresent) evaluateGlob(ctx context.Context, repo models.Repository, cfg models.PolicyConfig) (*Result, error) {
	paths, err := e.gh.GetRepositoryTree(ctx, repo.Name)
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		matched, err := doublestar.Match(cfg.Path, path)
		if err != nil {
			return nil, fmt.Errorf("matching pattern %q: %w", cfg.Path, err)
		}
		if matched {
			return &Result{}, nil
		}
	}

	return &Result{Violated: true, Detail: fmt.Sprintf("no file matches %q", cfg.Path)}, nil
}

func isGlob(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}
