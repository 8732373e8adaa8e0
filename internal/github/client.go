package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v80/github"
	"github.com/sirupsen/logrus"
)

// Client is the authenticated gateway to the GitHub API. Callers never
// deal with token lifecycle, pagination, or "not found" responses on
// read paths: reads report absence as a boolean, not an error.
type Client interface {
	Org() string
	BotLogin() string

	ListAllRepos(ctx context.Context) ([]*gh.Repository, error)
	GetRepository(ctx context.Context, repo string) (*gh.Repository, bool, error)
	ArchiveRepository(ctx context.Context, repo string) error
	GetRepositoryTree(ctx context.Context, repo string) ([]string, error)
	GetActionsPermissions(ctx context.Context, repo string) (*gh.ActionsPermissionsRepository, bool, error)

	GetFileContent(ctx context.Context, repo, path string) (string, bool, error)

	ListOpenIssues(ctx context.Context, repo, label string) ([]*gh.Issue, error)
	CreateIssue(ctx context.Context, repo, title, body string, labels []string) (*gh.Issue, error)

	ListOpenPullRequests(ctx context.Context, repo string) ([]*gh.PullRequest, error)
	GetPullRequest(ctx context.Context, repo string, number int) (*gh.PullRequest, error)
	ListPRComments(ctx context.Context, repo string, number int) ([]*gh.IssueComment, error)
	CreatePRComment(ctx context.Context, repo string, number int, body string) (*gh.IssueComment, error)

	FindCheckRun(ctx context.Context, repo, ref, name string) (*gh.CheckRun, error)
	CreateCheckRun(ctx context.Context, repo, headSHA, name, conclusion string) (*gh.CheckRun, error)
	UpdateCheckRun(ctx context.Context, repo string, checkID int64, name, conclusion string) (*gh.CheckRun, error)

	// User-scoped operations authenticate with the caller's own token
	// and never touch the installation-token path.
	IsTeamMember(ctx context.Context, userToken, org, teamSlug, login string) (bool, error)
	ListUserOrgs(ctx context.Context, userToken string) ([]string, error)
}

type client struct {
	github   *gh.Client
	org      string
	botLogin string
	log      *logrus.Logger
}

// installTransport injects the current installation token into every
// request. Renewal lives in tokenCache; the transport only ever sees
// a valid token.
type installTransport struct {
	tokens *tokenCache
	base   http.RoundTripper
}

func (t *installTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.tokens.Token(req.Context())
	if err != nil {
		return nil, err
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	return t.base.RoundTrip(clone)
}

// New builds a Client authenticated as a GitHub App installation.
func New(appID, installationID int64, privateKeyPEM []byte, org, botLogin string, log *logrus.Logger) (Client, error) {
	auth, err := newAppAuth(appID, installationID, privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("building app authenticator: %w", err)
	}

	httpClient := &http.Client{
		Transport: &installTransport{
			tokens: newTokenCache(auth.exchange),
			base:   http.DefaultTransport,
		},
	}

	return &client{
		github:   gh.NewClient(httpClient),
		org:      org,
		botLogin: botLogin,
		log:      log,
	}, nil
}

func (c *client) Org() string      { return c.org }
func (c *client) BotLogin() string { return c.botLogin }

// isNotFound reports whether a response/error pair is an upstream 404.
func isNotFound(resp *gh.Response, err error) bool {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
