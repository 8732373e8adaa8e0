package action

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubMocks "github.com/repofleet/compliance-bot/internal/github/mocks"
	"github.com/repofleet/compliance-bot/internal/evaluator"
	"github.com/repofleet/compliance-bot/internal/policy"
	"github.com/repofleet/compliance-bot/internal/store"
	"github.com/repofleet/compliance-bot/models"
)

const scanConfig = `
authorized_team: acme/admins
policies:
  - name: readme
    type: file_present
    path: README.md
    actions: create_issue
`

type scanFixture struct {
	store    store.Store
	executor *Executor
	mock     *githubMocks.MockClient
	scanID   uint
	repos    []models.Repository
}

// newScanFixture persists one completed scan with a violation of the
// readme policy in each named repository.
func newScanFixture(t *testing.T, configYAML string, repoNames ...string) *scanFixture {
	t.Helper()
	ctx := context.Background()

	st, err := store.Open(filepath.Join(t.TempDir(), "compliance.db"))
	require.NoError(t, err)

	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Return(configYAML, true, nil)

	loader := policy.NewLoader(mockClient, "compliance-config", "compliance.yml", quietLogger())
	executor := NewExecutor(st, mockClient, loader, quietLogger())

	policyRow, err := st.EnsurePolicy(ctx, &models.Policy{
		Name: "readme", Type: "file_present",
		Actions: models.StringList{models.ActionCreateIssue},
	})
	require.NoError(t, err)

	scan, err := st.CreateScan(ctx)
	require.NoError(t, err)

	fixture := &scanFixture{store: st, executor: executor, mock: mockClient, scanID: scan.ID}
	var violations []models.Violation
	for i, name := range repoNames {
		repo := models.Repository{
			GithubID:   int64(100 + i),
			Name:       name,
			FullName:   "acme/" + name,
			LastSeenAt: time.Now(),
		}
		require.NoError(t, st.UpsertRepository(ctx, &repo))
		fixture.repos = append(fixture.repos, repo)
		violations = append(violations, models.Violation{
			ScanID:       scan.ID,
			RepositoryID: repo.ID,
			PolicyID:     policyRow.ID,
			Detail:       "required file missing",
			DetectedAt:   time.Now(),
		})
	}
	require.NoError(t, st.CreateViolations(ctx, violations))
	require.NoError(t, st.CompleteScan(ctx, scan.ID))

	return fixture
}

func TestProcessScan_FailureIsolatedPerViolation(t *testing.T) {
	ctx := context.Background()
	fixture := newScanFixture(t, scanConfig, "alpha", "bravo", "charlie")

	for _, repo := range fixture.repos {
		fixture.mock.
			EXPECT().
			ListOpenIssues(mock.Anything, repo.Name, "compliance").
			Once().
			Return(nil, nil)
	}
	fixture.mock.
		EXPECT().
		CreateIssue(mock.Anything, "alpha", mock.Anything, mock.Anything, mock.Anything).
		Once().
		Return(&gh.Issue{HTMLURL: gh.Ptr("https://github.com/acme/alpha/issues/1")}, nil)
	fixture.mock.
		EXPECT().
		CreateIssue(mock.Anything, "bravo", mock.Anything, mock.Anything, mock.Anything).
		Once().
		Return(nil, errors.New("api error"))
	fixture.mock.
		EXPECT().
		CreateIssue(mock.Anything, "charlie", mock.Anything, mock.Anything, mock.Anything).
		Once().
		Return(&gh.Issue{HTMLURL: gh.Ptr("https://github.com/acme/charlie/issues/1")}, nil)

	// The middle failure is recorded and contained, never returned.
	err := fixture.executor.ProcessScan(ctx, fixture.scanID)
	require.NoError(t, err)

	statuses := map[string]models.ActionStatus{}
	for _, repo := range fixture.repos {
		logs, err := fixture.store.ListActionLogs(ctx, repo.ID)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		statuses[repo.Name] = logs[0].Status
	}
	assert.Equal(t, models.ActionStatusSuccess, statuses["alpha"])
	assert.Equal(t, models.ActionStatusFailed, statuses["bravo"])
	assert.Equal(t, models.ActionStatusSuccess, statuses["charlie"])
}

func TestProcessScan_UnknownActionProducesNoLog(t *testing.T) {
	ctx := context.Background()
	unknownActionConfig := `
authorized_team: acme/admins
policies:
  - name: readme
    type: file_present
    path: README.md
    actions: quarantine_repo
`
	fixture := newScanFixture(t, unknownActionConfig, "alpha")

	err := fixture.executor.ProcessScan(ctx, fixture.scanID)
	require.NoError(t, err)

	logs, err := fixture.store.ListActionLogs(ctx, fixture.repos[0].ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestProcessScan_PolicyRemovedFromConfig(t *testing.T) {
	ctx := context.Background()
	emptyConfig := "authorized_team: acme/admins\npolicies: []\n"
	fixture := newScanFixture(t, emptyConfig, "alpha")

	// The violation references a policy no longer configured; its
	// actions are skipped without error or audit rows.
	err := fixture.executor.ProcessScan(ctx, fixture.scanID)
	require.NoError(t, err)

	logs, err := fixture.store.ListActionLogs(ctx, fixture.repos[0].ID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestProcessScan_LogOnlyAction(t *testing.T) {
	ctx := context.Background()
	logOnlyConfig := `
authorized_team: acme/admins
policies:
  - name: readme
    type: file_present
    path: README.md
    actions: log_only
`
	fixture := newScanFixture(t, logOnlyConfig, "alpha")

	err := fixture.executor.ProcessScan(ctx, fixture.scanID)
	require.NoError(t, err)

	logs, err := fixture.store.ListActionLogs(ctx, fixture.repos[0].ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ActionStatusSuccess, logs[0].Status)
	assert.Equal(t, models.ActionLogOnly, logs[0].ActionType)
}

func TestProcessPullRequest_CommentOnlyWhereViolated(t *testing.T) {
	ctx := context.Background()
	prConfig := `
authorized_team: acme/admins
policies:
  - name: readme
    type: file_present
    path: README.md
    actions:
      - comment_on_prs
      - block_prs
  - name: owner
    type: file_field
    path: service.yml
    field: metadata.owner
    actions:
      - comment_on_prs
      - block_prs
`
	st, err := store.Open(filepath.Join(t.TempDir(), "compliance.db"))
	require.NoError(t, err)

	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Return(prConfig, true, nil)
	loader := policy.NewLoader(mockClient, "compliance-config", "compliance.yml", quietLogger())
	executor := NewExecutor(st, mockClient, loader, quietLogger())

	repo := models.Repository{GithubID: 7, Name: "svc", FullName: "acme/svc", LastSeenAt: time.Now()}
	require.NoError(t, st.UpsertRepository(ctx, &repo))

	cfg, err := loader.Load(ctx)
	require.NoError(t, err)

	// Only the readme policy is violated on this evaluation.
	findings := []evaluator.Finding{
		{Policy: cfg.Policies[0], Detail: "required file missing"},
	}

	mockClient.EXPECT().BotLogin().Return("compliance-bot[bot]")
	mockClient.
		EXPECT().
		ListPRComments(mock.Anything, "svc", 5).
		Once().
		Return(nil, nil)
	mockClient.
		EXPECT().
		CreatePRComment(mock.Anything, "svc", 5, mock.Anything).
		Once().
		Return(&gh.IssueComment{}, nil)

	// Both policies reconcile their check; the conclusion differs.
	mockClient.
		EXPECT().
		FindCheckRun(mock.Anything, "svc", "head-sha", "compliance/policy-bot").
		Twice().
		Return(nil, nil)
	mockClient.
		EXPECT().
		CreateCheckRun(mock.Anything, "svc", "head-sha", "compliance/policy-bot", "failure").
		Once().
		Return(&gh.CheckRun{}, nil)
	mockClient.
		EXPECT().
		CreateCheckRun(mock.Anything, "svc", "head-sha", "compliance/policy-bot", "success").
		Once().
		Return(&gh.CheckRun{}, nil)

	err = executor.ProcessPullRequest(ctx, repo, cfg, findings,
		PullRequestTarget{Number: 5, HeadSHA: "head-sha"})
	require.NoError(t, err)

	logs, err := st.ListActionLogs(ctx, repo.ID)
	require.NoError(t, err)
	// One comment row plus two block rows.
	assert.Len(t, logs, 3)
}
