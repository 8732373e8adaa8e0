package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubMocks "github.com/repofleet/compliance-bot/internal/github/mocks"
	"github.com/repofleet/compliance-bot/internal/policy"
)

const authConfig = `
authorized_team: acme/platform-admins
policies: []
`

func newAuthFixture(t *testing.T) (AuthService, *githubMocks.MockClient) {
	t.Helper()
	mockClient := githubMocks.NewMockClient(t)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Return(authConfig, true, nil)

	loader := policy.NewLoader(mockClient, "compliance-config", "compliance.yml", log)
	return NewAuthService(mockClient, loader), mockClient
}

func TestIsAuthorized_ActiveTeamMember(t *testing.T) {
	svc, mockClient := newAuthFixture(t)

	mockClient.
		EXPECT().
		ListUserOrgs(mock.Anything, "user-token").
		Once().
		Return([]string{"acme", "other-org"}, nil)
	mockClient.
		EXPECT().
		IsTeamMember(mock.Anything, "user-token", "acme", "platform-admins", "alice").
		Once().
		Return(true, nil)

	ok, err := svc.IsAuthorized(context.Background(), "user-token", "alice")

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsAuthorized_NotInOrg(t *testing.T) {
	svc, mockClient := newAuthFixture(t)

	// The team lookup never happens for a user outside the org.
	mockClient.
		EXPECT().
		ListUserOrgs(mock.Anything, "user-token").
		Once().
		Return([]string{"unrelated-org"}, nil)

	ok, err := svc.IsAuthorized(context.Background(), "user-token", "mallory")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAuthorized_InOrgButNotOnTeam(t *testing.T) {
	svc, mockClient := newAuthFixture(t)

	mockClient.
		EXPECT().
		ListUserOrgs(mock.Anything, "user-token").
		Once().
		Return([]string{"acme"}, nil)
	mockClient.
		EXPECT().
		IsTeamMember(mock.Anything, "user-token", "acme", "platform-admins", "bob").
		Once().
		Return(false, nil)

	ok, err := svc.IsAuthorized(context.Background(), "user-token", "bob")

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAuthorized_OrgNameCaseInsensitive(t *testing.T) {
	svc, mockClient := newAuthFixture(t)

	mockClient.
		EXPECT().
		ListUserOrgs(mock.Anything, "user-token").
		Once().
		Return([]string{"Acme"}, nil)
	mockClient.
		EXPECT().
		IsTeamMember(mock.Anything, "user-token", "acme", "platform-admins", "alice").
		Once().
		Return(true, nil)

	ok, err := svc.IsAuthorized(context.Background(), "user-token", "alice")

	require.NoError(t, err)
	assert.True(t, ok)
}
