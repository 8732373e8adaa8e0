package policy

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/repofleet/compliance-bot/models"
)

var (
	// ErrConfigNotFound means the document is absent at the well-known
	// path in the admin repository.
	ErrConfigNotFound = errors.New("compliance config not found")

	// ErrConfigInvalid means the document exists but cannot be used:
	// malformed YAML or a missing required field.
	ErrConfigInvalid = errors.New("compliance config invalid")
)

// Parse decodes and validates a compliance config document. The
// scalar-or-list action shape is normalized by models.StringList
// during decoding; every policy carries an ordered action list from
// here on.
func Parse(data []byte) (*models.ComplianceConfig, error) {
	var cfg models.ComplianceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	if strings.TrimSpace(cfg.AuthorizedTeam) == "" {
		return nil, fmt.Errorf("%w: authorized_team is required", ErrConfigInvalid)
	}
	if !strings.Contains(cfg.AuthorizedTeam, "/") {
		return nil, fmt.Errorf("%w: authorized_team must be in organization/team-slug form", ErrConfigInvalid)
	}

	for i, policy := range cfg.Policies {
		if strings.TrimSpace(policy.Type) == "" {
			return nil, fmt.Errorf("%w: policy %d has no type", ErrConfigInvalid, i)
		}
		if policy.Name == "" {
			cfg.Policies[i].Name = policy.Type
		}
	}

	return &cfg, nil
}

// FindPolicy returns the config entry for a policy type.
func FindPolicy(cfg *models.ComplianceConfig, policyType string) (models.PolicyConfig, bool) {
	for _, policy := range cfg.Policies {
		if policy.Type == policyType {
			return policy, true
		}
	}
	return models.PolicyConfig{}, false
}
