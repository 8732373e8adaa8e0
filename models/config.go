package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringList is an ordered list of strings that accepts both a scalar
// and a sequence in YAML. The scalar form is normalized to a
// one-element list at the parsing boundary; nothing past this type
// ever sees the ambiguity. It always marshals back as a sequence.
type StringList []string

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*l = StringList{single}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = StringList(items)
		return nil
	default:
		return fmt.Errorf("expected string or list of strings, got %v node", node.Kind)
	}
}

func (l StringList) MarshalYAML() (interface{}, error) {
	return []string(l), nil
}

// Contains reports whether the list holds the given value.
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}

// ComplianceConfig is the externally-authored declarative root,
// fetched from a well-known path in the admin repository. The bot
// holds a time-bounded cached copy; the document itself is owned by
// whoever edits that repository.
type ComplianceConfig struct {
	// AuthorizedTeam names the single team allowed to administer the
	// bot, in "organization/team-slug" form. Required.
	AuthorizedTeam string `yaml:"authorized_team"`

	Policies []PolicyConfig `yaml:"policies"`
}

// PolicyConfig is one declared policy: a type key that must match a
// registered evaluator, the ordered action list to run per violation,
// and optional evaluator- and action-specific parameters.
type PolicyConfig struct {
	Name        string     `yaml:"name"`
	Type        string     `yaml:"type"`
	Description string     `yaml:"description,omitempty"`
	Actions     StringList `yaml:"actions"`

	// Evaluator parameters. Which of these apply depends on Type.
	Path     string `yaml:"path,omitempty"`
	Field    string `yaml:"field,omitempty"`
	Setting  string `yaml:"setting,omitempty"`
	Expected string `yaml:"expected,omitempty"`

	// Action parameters, keyed by action family.
	Issue   *IssueParams   `yaml:"issue,omitempty"`
	Comment *CommentParams `yaml:"comment,omitempty"`
	Check   *CheckParams   `yaml:"check,omitempty"`
}

type IssueParams struct {
	Title  string   `yaml:"title,omitempty"`
	Body   string   `yaml:"body,omitempty"`
	Labels []string `yaml:"labels,omitempty"`
}

type CommentParams struct {
	Message string `yaml:"message,omitempty"`
}

type CheckParams struct {
	Name string `yaml:"name,omitempty"`
}
