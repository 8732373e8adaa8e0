package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repofleet/compliance-bot/models"
)

const validConfig = `
authorized_team: acme/platform-admins
policies:
  - name: readme required
    type: file_present
    path: README.md
    actions:
      - create_issue
      - comment_on_prs
  - type: repo_setting
    setting: default_branch
    expected: main
    actions: log_only
`

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))

	require.NoError(t, err)
	assert.Equal(t, "acme/platform-admins", cfg.AuthorizedTeam)
	require.Len(t, cfg.Policies, 2)

	assert.Equal(t, "readme required", cfg.Policies[0].Name)
	assert.Equal(t, models.StringList{"create_issue", "comment_on_prs"}, cfg.Policies[0].Actions)

	// Scalar action form is normalized, unnamed policies default to the type.
	assert.Equal(t, "repo_setting", cfg.Policies[1].Name)
	assert.Equal(t, models.StringList{"log_only"}, cfg.Policies[1].Actions)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("authorized_team: [unclosed"))

	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestParse_MissingAuthorizedTeam(t *testing.T) {
	_, err := Parse([]byte("policies: []"))

	assert.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "authorized_team")
}

func TestParse_AuthorizedTeamWithoutSlug(t *testing.T) {
	_, err := Parse([]byte("authorized_team: acme\npolicies: []"))

	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestParse_PolicyWithoutType(t *testing.T) {
	doc := `
authorized_team: acme/admins
policies:
  - name: nameless
    actions: log_only
`
	_, err := Parse([]byte(doc))

	assert.ErrorIs(t, err, ErrConfigInvalid)
}

func TestFindPolicy(t *testing.T) {
	cfg, err := Parse([]byte(validConfig))
	require.NoError(t, err)

	found, ok := FindPolicy(cfg, "repo_setting")
	require.True(t, ok)
	assert.Equal(t, "main", found.Expected)

	_, ok = FindPolicy(cfg, "file_field")
	assert.False(t, ok)
}
