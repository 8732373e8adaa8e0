package github

import (
	"errors"

	gh "github.com/google/go-github/v80/github"
	"github.com/sirupsen/logrus"
)

// logRateLimit logs remaining-quota context when err is a primary
// (429) or secondary (403 + Retry-After) rate-limit error, then
// returns err unchanged. The client never retries on rate limits;
// backoff belongs to the job scheduler.
func (c *client) logRateLimit(err error) error {
	if err == nil {
		return nil
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		c.log.WithFields(logrus.Fields{
			"limit":     rateErr.Rate.Limit,
			"remaining": rateErr.Rate.Remaining,
			"reset":     rateErr.Rate.Reset.Time,
		}).Warn("github: primary rate limit exceeded")
		return err
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		fields := logrus.Fields{}
		if abuseErr.RetryAfter != nil {
			fields["retry_after"] = *abuseErr.RetryAfter
		}
		c.log.WithFields(fields).Warn("github: secondary rate limit exceeded")
	}

	return err
}
