package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/internal/policy"
)

// AuthService answers whether a logged-in user may administer the bot,
// based on the authorized team named in the compliance config. Both
// lookups run under the user's own token, never the installation
// token.
type AuthService interface {
	IsAuthorized(ctx context.Context, userToken, login string) (bool, error)
}

type authService struct {
	gh     github.Client
	loader *policy.Loader
}

func NewAuthService(gh github.Client, loader *policy.Loader) AuthService {
	return &authService{gh: gh, loader: loader}
}

func (s *authService) IsAuthorized(ctx context.Context, userToken, login string) (bool, error) {
	cfg, err := s.loader.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("loading compliance config: %w", err)
	}

	parts := strings.SplitN(cfg.AuthorizedTeam, "/", 2)
	org, teamSlug := parts[0], parts[1]

	// Team membership is only visible to org members; check the cheap
	// org listing first so non-members get a clean false.
	orgs, err := s.gh.ListUserOrgs(ctx, userToken)
	if err != nil {
		return false, err
	}
	inOrg := false
	for _, name := range orgs {
		if strings.EqualFold(name, org) {
			inOrg = true
			break
		}
	}
	if !inOrg {
		return false, nil
	}

	return s.gh.IsTeamMember(ctx, userToken, org, teamSlug, login)
}
