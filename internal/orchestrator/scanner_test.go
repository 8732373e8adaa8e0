package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/repofleet/compliance-bot/internal/action"
	"github.com/repofleet/compliance-bot/internal/evaluator"
	githubMocks "github.com/repofleet/compliance-bot/internal/github/mocks"
	"github.com/repofleet/compliance-bot/internal/jobs"
	"github.com/repofleet/compliance-bot/internal/policy"
	"github.com/repofleet/compliance-bot/internal/store"
)

const scannerConfig = `
authorized_team: acme/admins
policies:
  - name: readme
    type: file_present
    path: README.md
    actions: log_only
`

// recordingQueue captures enqueued jobs instead of running them.
type recordingQueue struct {
	jobs []jobs.Job
}

func (q *recordingQueue) Enqueue(job jobs.Job) {
	q.jobs = append(q.jobs, job)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type scannerFixture struct {
	scanner *Scanner
	store   store.Store
	mock    *githubMocks.MockClient
	queue   *recordingQueue
}

func newScannerFixture(t *testing.T) *scannerFixture {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "compliance.db"))
	require.NoError(t, err)

	mockClient := githubMocks.NewMockClient(t)
	log := quietLogger()
	loader := policy.NewLoader(mockClient, "compliance-config", "compliance.yml", log)
	registry := evaluator.NewRegistry(evaluator.NewFilePresent(mockClient))
	engine := evaluator.NewEngine(registry, log)
	executor := action.NewExecutor(st, mockClient, loader, log)
	queue := &recordingQueue{}

	return &scannerFixture{
		scanner: NewScanner(st, mockClient, loader, engine, executor, queue, log),
		store:   st,
		mock:    mockClient,
		queue:   queue,
	}
}

func upstreamRepo(id int64, name string) *gh.Repository {
	return &gh.Repository{
		ID:       gh.Ptr(id),
		Name:     gh.Ptr(name),
		FullName: gh.Ptr("acme/" + name),
		Archived: gh.Ptr(false),
	}
}

func TestRun_CompletesAndPersistsViolations(t *testing.T) {
	ctx := context.Background()
	fixture := newScannerFixture(t)

	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Once().
		Return(scannerConfig, true, nil)
	fixture.mock.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return([]*gh.Repository{upstreamRepo(1, "with-readme"), upstreamRepo(2, "without-readme")}, nil)
	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "with-readme", "README.md").
		Once().
		Return("# hello", true, nil)
	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "without-readme", "README.md").
		Once().
		Return("", false, nil)

	err := fixture.scanner.Run(ctx)
	require.NoError(t, err)

	scan, ok, err := fixture.store.LatestCompletedScan(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	violations, err := fixture.store.ViolationsForScan(ctx, scan.ID)
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "without-readme", violations[0].Repository.Name)
	assert.Equal(t, "file_present", violations[0].Policy.Type)

	// Action processing was handed to the queue, not run inline.
	require.Len(t, fixture.queue.jobs, 1)
	assert.Equal(t, "process_actions", fixture.queue.jobs[0].Name())
}

func TestRun_ConfigFetchFailureMarksScanFailed(t *testing.T) {
	ctx := context.Background()
	fixture := newScannerFixture(t)

	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Once().
		Return("", false, nil)

	err := fixture.scanner.Run(ctx)
	require.ErrorIs(t, err, policy.ErrConfigNotFound)

	_, ok, lookupErr := fixture.store.LatestCompletedScan(ctx)
	require.NoError(t, lookupErr)
	assert.False(t, ok)

	assert.Empty(t, fixture.queue.jobs)
}

func TestRun_FleetListingFailureMarksScanFailed(t *testing.T) {
	ctx := context.Background()
	fixture := newScannerFixture(t)

	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Once().
		Return(scannerConfig, true, nil)
	fixture.mock.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return(nil, errors.New("rate limited"))

	err := fixture.scanner.Run(ctx)
	require.Error(t, err)

	_, ok, lookupErr := fixture.store.LatestCompletedScan(ctx)
	require.NoError(t, lookupErr)
	assert.False(t, ok)
}

func TestRun_SyncRenamesAndPrunes(t *testing.T) {
	ctx := context.Background()
	fixture := newScannerFixture(t)

	// First scan observes two repositories.
	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Twice().
		Return(scannerConfig, true, nil)
	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, mock.Anything, "README.md").
		Return("# hi", true, nil)
	fixture.mock.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return([]*gh.Repository{upstreamRepo(1, "old-name"), upstreamRepo(2, "doomed")}, nil)

	require.NoError(t, fixture.scanner.Run(ctx))

	// Second scan: repo 1 was renamed upstream, repo 2 is gone.
	fixture.mock.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return([]*gh.Repository{upstreamRepo(1, "new-name")}, nil)

	require.NoError(t, fixture.scanner.Run(ctx))

	repos, err := fixture.store.ListRepositories(ctx)
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "new-name", repos[0].Name)
	assert.Equal(t, int64(1), repos[0].GithubID)
}

func TestRun_EvaluatorErrorDoesNotFailScan(t *testing.T) {
	ctx := context.Background()
	fixture := newScannerFixture(t)

	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "compliance-config", "compliance.yml").
		Once().
		Return(scannerConfig, true, nil)
	fixture.mock.
		EXPECT().
		ListAllRepos(mock.Anything).
		Once().
		Return([]*gh.Repository{upstreamRepo(1, "flaky")}, nil)
	fixture.mock.
		EXPECT().
		GetFileContent(mock.Anything, "flaky", "README.md").
		Once().
		Return("", false, errors.New("transient api error"))

	err := fixture.scanner.Run(ctx)
	require.NoError(t, err)

	scan, ok, err := fixture.store.LatestCompletedScan(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	// The broken pair counts as no violation.
	violations, err := fixture.store.ViolationsForScan(ctx, scan.ID)
	require.NoError(t, err)
	assert.Empty(t, violations)
}
