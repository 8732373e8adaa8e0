package evaluator

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/models"
)

// FileField checks that a required file exists, parses as YAML, and
// carries a non-blank value at a dotted field path (e.g.
// "metadata.owner"). The four failure modes — missing file,
// unparseable document, missing field, blank value — are distinct
// violation details so operators can tell them apart.
type FileField struct {
	gh github.Client
}

func NewFileField(gh github.Client) *FileField {
	return &FileField{gh: gh}
}

func (e *FileField) PolicyType() string { return "file_field" }

func (e *FileField) Evaluate(ctx context.Context, repo models.Repository, cfg models.PolicyConfig) (*Result, error) {
	if cfg.Path == "" || cfg.Field == "" {
		return nil, fmt.Errorf("file_field policy %q needs both path and field", cfg.Name)
	}

	content, found, err := e.gh.GetFileContent(ctx, repo.Name, cfg.Path)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Result{Violated: true, Detail: fmt.Sprintf("required file %q is missing", cfg.Path)}, nil
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return &Result{Violated: true, Detail: fmt.Sprintf("file %q is not parseable: %v", cfg.Path, err)}, nil
	}

	value, ok := navigate(doc, strings.Split(cfg.Field, "."))
	if !ok {
		return &Result{Violated: true, Detail: fmt.Sprintf("field %q is not set in %q", cfg.Field, cfg.Path)}, nil
	}

	if isBlank(value) {
		return &Result{Violated: true, Detail: fmt.Sprintf("field %q in %q is blank", cfg.Field, cfg.Path)}, nil
	}

	return &Result{}, nil
}

// navigate walks nested mappings along the field path.
func navigate(doc map[string]interface{}, path []string) (interface{}, bool) {
	var current interface{} = doc
	for _, key := range path {
		mapping, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = mapping[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func isBlank(value interface{}) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
