package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
)

// User-scoped operations. These authenticate with the end user's own
// token via a throwaway client; the installation-token machinery is
// never involved.

// IsTeamMember reports whether login is an active member of the team.
// A 404 (not a member, or the team doesn't exist) is a plain false.
func (c *client) IsTeamMember(ctx context.Context, userToken, org, teamSlug, login string) (bool, error) {
	userClient := gh.NewClient(nil).WithAuthToken(userToken)

	membership, resp, err := userClient.Teams.GetTeamMembershipBySlug(ctx, org, teamSlug, login)
	if isNotFound(resp, err) {
		return false, nil
	}
	if err != nil {
		return false, c.logRateLimit(fmt.Errorf("checking %s membership in %s/%s: %w", login, org, teamSlug, err))
	}
	return membership.GetState() == "active", nil
}

// ListUserOrgs returns the login names of the organizations visible to
// the token's user.
func (c *client) ListUserOrgs(ctx context.Context, userToken string) ([]string, error) {
	userClient := gh.NewClient(nil).WithAuthToken(userToken)

	var logins []string
	opts := &gh.ListOptions{PerPage: 100}
	for {
		orgs, resp, err := userClient.Organizations.List(ctx, "", opts)
		if err != nil {
			return nil, c.logRateLimit(fmt.Errorf("listing user organizations: %w", err))
		}
		for _, org := range orgs {
			logins = append(logins, org.GetLogin())
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return logins, nil
}
