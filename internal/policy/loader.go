package policy

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/internal/github"
	"github.com/repofleet/compliance-bot/models"
)

// cacheTTL is the sliding expiration window for the cached document.
// Every read extends the window; ForceRefresh bypasses it.
const cacheTTL = 15 * time.Minute

// Loader fetches the compliance config document from the admin
// repository and caches it. The fill is guarded so that N concurrent
// readers against a cold cache produce exactly one upstream fetch.
type Loader struct {
	gh   github.Client
	repo string
	path string
	log  *logrus.Logger

	ttl time.Duration
	now func() time.Time

	mu        sync.Mutex
	cached    *models.ComplianceConfig
	expiresAt time.Time
}

func NewLoader(gh github.Client, repo, path string, log *logrus.Logger) *Loader {
	return &Loader{
		gh:   gh,
		repo: repo,
		path: path,
		log:  log,
		ttl:  cacheTTL,
		now:  time.Now,
	}
}

// Load returns the cached config, fetching it if the cache is cold or
// expired. A cache hit extends the expiry window.
func (l *Loader) Load(ctx context.Context) (*models.ComplianceConfig, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cached != nil && l.now().Before(l.expiresAt) {
		l.expiresAt = l.now().Add(l.ttl)
		return l.cached, nil
	}

	return l.refreshLocked(ctx)
}

// ForceRefresh discards the cache and fetches the latest document.
// Used when the caller must observe a just-edited config immediately,
// and at the start of every scan.
func (l *Loader) ForceRefresh(ctx context.Context) (*models.ComplianceConfig, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.refreshLocked(ctx)
}

func (l *Loader) refreshLocked(ctx context.Context) (*models.ComplianceConfig, error) {
	content, found, err := l.gh.GetFileContent(ctx, l.repo, l.path)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrConfigNotFound
	}

	cfg, err := Parse([]byte(content))
	if err != nil {
		return nil, err
	}

	l.cached = cfg
	l.expiresAt = l.now().Add(l.ttl)
	l.log.WithField("policies", len(cfg.Policies)).Debug("compliance config refreshed")
	return cfg, nil
}
