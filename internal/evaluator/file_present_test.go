package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubMocks "github.com/repofleet/compliance-bot/internal/github/mocks"
	"github.com/repofleet/compliance-bot/models"
)

func TestFilePresent_LiteralPathFound(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "svc", "README.md").
		Once().
		Return("# svc", true, nil)

	result, err := NewFilePresent(mockClient).Evaluate(context.Background(),
		models.Repository{Name: "svc"},
		models.PolicyConfig{Name: "readme", Type: "file_present", Path: "README.md"})

	require.NoError(t, err)
	assert.False(t, result.Violated)
}

func TestFilePresent_LiteralPathMissing(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetFileContent(mock.Anything, "svc", "CODEOWNERS").
		Once().
		Return("", false, nil)

	result, err := NewFilePresent(mockClient).Evaluate(context.Background(),
		models.Repository{Name: "svc"},
		models.PolicyConfig{Name: "owners", Type: "file_present", Path: "CODEOWNERS"})

	require.NoError(t, err)
	assert.True(t, result.Violated)
	assert.Contains(t, result.Detail, "CODEOWNERS")
}

func TestFilePresent_GlobMatchesTree(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetRepositoryTree(mock.Anything, "svc").
		Once().
		Return([]string{"cmd/main.go", ".github/workflows/ci.yml"}, nil)

	result, err := NewFilePresent(mockClient).Evaluate(context.Background(),
		models.Repository{Name: "svc"},
		models.PolicyConfig{Name: "ci", Type: "file_present", Path: ".github/workflows/*.yml"})

	require.NoError(t, err)
	assert.False(t, result.Violated)
}

func TestFilePresent_GlobNoMatch(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetRepositoryTree(mock.Anything, "svc").
		Once().
		Return([]string{"main.go"}, nil)

	result, err := NewFilePresent(mockClient).Evaluate(context.Background(),
		models.Repository{Name: "svc"},
		models.PolicyConfig{Name: "owners", Type: "file_present", Path: "**/CODEOWNERS"})

	require.NoError(t, err)
	assert.True(t, result.Violated)
}

func TestFilePresent_GlobOnEmptyRepo(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)
	mockClient.
		EXPECT().
		GetRepositoryTree(mock.Anything, "empty").
		Once().
		Return(nil, nil)

	result, err := NewFilePresent(mockClient).Evaluate(context.Background(),
		models.Repository{Name: "empty"},
		models.PolicyConfig{Name: "owners", Type: "file_present", Path: "**/CODEOWNERS"})

	require.NoError(t, err)
	assert.True(t, result.Violated)
}

func TestFilePresent_NoPathConfigured(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	_, err := NewFilePresent(mockClient).Evaluate(context.Background(),
		models.Repository{Name: "svc"},
		models.PolicyConfig{Name: "broken", Type: "file_present"})

	assert.Error(t, err)
}
