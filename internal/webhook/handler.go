package webhook

import (
	"encoding/json"
	"io"
	"net/http"

	gh "github.com/google/go-github/v80/github"
	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/internal/action"
	"github.com/repofleet/compliance-bot/internal/evaluator"
	"github.com/repofleet/compliance-bot/internal/jobs"
	"github.com/repofleet/compliance-bot/internal/policy"
	"github.com/repofleet/compliance-bot/internal/store"
)

// prEventActions are the pull-request lifecycle actions that trigger a
// re-evaluation of the repository.
var prEventActions = map[string]bool{
	"opened":           true,
	"synchronize":      true,
	"reopened":         true,
	"ready_for_review": true,
}

// Handler ingests signed GitHub webhooks. Verified events are handed
// to the job queue and the response returns immediately — GitHub
// enforces a delivery timeout and retries slow responders, and those
// retries must hit the duplicate guards, not a second inline
// evaluation.
type Handler struct {
	secret   []byte
	queue    jobs.Queue
	store    store.Store
	loader   *policy.Loader
	engine   *evaluator.Engine
	executor *action.Executor
	log      *logrus.Logger
}

func NewHandler(secret []byte, queue jobs.Queue, st store.Store, loader *policy.Loader, engine *evaluator.Engine, executor *action.Executor, log *logrus.Logger) *Handler {
	return &Handler{
		secret:   secret,
		queue:    queue,
		store:    st,
		loader:   loader,
		engine:   engine,
		executor: executor,
		log:      log,
	}
}

func (h *Handler) HandleGithub(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "reading body", http.StatusBadRequest)
		return
	}

	// Constant-time HMAC check over the exact raw body. Nothing in the
	// payload is interpreted before this passes.
	signature := r.Header.Get("X-Hub-Signature-256")
	if err := gh.ValidateSignature(signature, body, h.secret); err != nil {
		h.log.WithField("delivery", r.Header.Get("X-GitHub-Delivery")).
			Warn("webhook signature rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	event := r.Header.Get("X-GitHub-Event")
	if event != "pull_request" {
		// Not acting on an event type is not an error condition.
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ignored"))
		return
	}

	var payload gh.PullRequestEvent
	if err := json.Unmarshal(body, &payload); err != nil {
		h.log.WithError(err).Warn("unparseable pull_request payload, acknowledging")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ignored"))
		return
	}

	if !prEventActions[payload.GetAction()] {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ignored"))
		return
	}

	h.queue.Enqueue(&pullRequestJob{
		handler:      h,
		repoGithubID: payload.GetRepo().GetID(),
		repoName:     payload.GetRepo().GetName(),
		repoFullName: payload.GetRepo().GetFullName(),
		prNumber:     payload.GetPullRequest().GetNumber(),
		headSHA:      payload.GetPullRequest().GetHead().GetSHA(),
	})

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("accepted"))
}
