package github

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
)

// tokenExpiryMargin is how far before the installation token's real
// expiry the cache treats it as stale. GitHub issues 1-hour tokens;
// renewing 5 minutes early avoids a token expiring mid-request.
const tokenExpiryMargin = 5 * time.Minute

// appJWTValidity is the lifetime of the signed App assertion used for
// the token exchange. GitHub caps it at 10 minutes.
const appJWTValidity = 10 * time.Minute

// tokenCache holds the process-wide installation token. The fill is
// guarded by a mutex so that concurrent callers during a miss window
// trigger exactly one exchange; everyone blocks on the same fill and
// receives the same token.
type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	exchange  func(ctx context.Context) (string, time.Time, error)
	now       func() time.Time
}

func newTokenCache(exchange func(ctx context.Context) (string, time.Time, error)) *tokenCache {
	return &tokenCache{exchange: exchange, now: time.Now}
}

func (c *tokenCache) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.now().Before(c.expiresAt.Add(-tokenExpiryMargin)) {
		return c.token, nil
	}

	token, expiresAt, err := c.exchange(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = expiresAt
	return token, nil
}

// appAuth generates RS256-signed App assertions and exchanges them for
// installation-scoped access tokens. A fresh assertion is generated
// per exchange; only the resulting installation token is cached.
type appAuth struct {
	appID          int64
	installationID int64
	privateKey     *rsa.PrivateKey
	apps           appsService
}

// appsService is the slice of go-github's Apps service used for the
// token exchange.
type appsService interface {
	CreateInstallationToken(ctx context.Context, id int64, opts *gh.InstallationTokenOptions) (*gh.InstallationToken, *gh.Response, error)
}

func newAppAuth(appID, installationID int64, privateKeyPEM []byte) (*appAuth, error) {
	privateKey, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	auth := &appAuth{
		appID:          appID,
		installationID: installationID,
		privateKey:     privateKey,
	}

	// The exchange request itself authenticates with the App JWT, not
	// an installation token, so it gets its own client and transport.
	jwtClient := &http.Client{Transport: &jwtTransport{auth: auth, base: http.DefaultTransport}}
	auth.apps = gh.NewClient(jwtClient).Apps

	return auth, nil
}

func parsePrivateKey(privateKeyPEM []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(privateKeyPEM)
	if block == nil {
		return nil, fmt.Errorf("no PEM block in private key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// GitHub documents PKCS1, but some key tooling emits PKCS8.
	keyAny, pkcs8Err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if pkcs8Err != nil {
		return nil, fmt.Errorf("parsing private key: %w (also tried PKCS8: %v)", err, pkcs8Err)
	}
	rsaKey, ok := keyAny.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA")
	}
	return rsaKey, nil
}

func (a *appAuth) exchange(ctx context.Context) (string, time.Time, error) {
	token, _, err := a.apps.CreateInstallationToken(ctx, a.installationID, nil)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("exchanging app assertion for installation token: %w", err)
	}
	if token.GetToken() == "" {
		return "", time.Time{}, fmt.Errorf("token exchange returned empty token")
	}
	return token.GetToken(), token.GetExpiresAt().Time, nil
}

// jwtTransport signs a fresh App JWT for every request it carries.
type jwtTransport struct {
	auth *appAuth
	base http.RoundTripper
}

func (t *jwtTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	jwt, err := t.auth.generateJWT()
	if err != nil {
		return nil, err
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+jwt)
	return t.base.RoundTrip(clone)
}

// generateJWT creates the RS256-signed App assertion. Claims: iss is
// the App ID, iat is backdated 60s for clock skew, exp is 10 minutes
// out. Stdlib crypto is enough for this constrained use; no JWT
// library is involved.
func (a *appAuth) generateJWT() (string, error) {
	now := time.Now()

	header := base64URLEncode([]byte(`{"alg":"RS256","typ":"JWT"}`))

	claims := struct {
		IssuedAt  int64  `json:"iat"`
		ExpiresAt int64  `json:"exp"`
		Issuer    string `json:"iss"`
	}{
		IssuedAt:  now.Add(-60 * time.Second).Unix(),
		ExpiresAt: now.Add(appJWTValidity).Unix(),
		Issuer:    strconv.FormatInt(a.appID, 10),
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshaling claims: %w", err)
	}

	signingInput := header + "." + base64URLEncode(claimsJSON)
	hash := sha256.Sum256([]byte(signingInput))
	signature, err := rsa.SignPKCS1v15(rand.Reader, a.privateKey, crypto.SHA256, hash[:])
	if err != nil {
		return "", fmt.Errorf("signing assertion: %w", err)
	}

	return signingInput + "." + base64URLEncode(signature), nil
}

func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}
