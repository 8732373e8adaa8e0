package evaluator

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/repofleet/compliance-bot/models"
)

// Result is one evaluator's verdict for one repository.
type Result struct {
	Violated bool
	Detail   string
}

// Evaluator checks one repository against one policy type. Evaluators
// only read — from the API client or repository metadata; every
// mutation belongs to the action executor.
type Evaluator interface {
	PolicyType() string
	Evaluate(ctx context.Context, repo models.Repository, cfg models.PolicyConfig) (*Result, error)
}

// Registry is the open set of known evaluators, keyed by policy type.
// Registration is explicit; nothing is discovered by reflection.
type Registry struct {
	evaluators map[string]Evaluator
}

func NewRegistry(evaluators ...Evaluator) *Registry {
	registry := &Registry{evaluators: make(map[string]Evaluator)}
	for _, evaluator := range evaluators {
		registry.Register(evaluator)
	}
	return registry
}

func (r *Registry) Register(evaluator Evaluator) {
	r.evaluators[evaluator.PolicyType()] = evaluator
}

func (r *Registry) Get(policyType string) (Evaluator, bool) {
	evaluator, ok := r.evaluators[policyType]
	return evaluator, ok
}

// Finding is a detected violation of one configured policy.
type Finding struct {
	Policy models.PolicyConfig
	Detail string
}

type Engine struct {
	registry *Registry
	log      *logrus.Logger
}

func NewEngine(registry *Registry, log *logrus.Logger) *Engine {
	return &Engine{registry: registry, log: log}
}

// EvaluateRepository runs every configured policy against one
// repository. A policy type with no registered evaluator is skipped
// with a warning, and an evaluator that fails or panics counts as "no
// violation" for that pair only — one broken policy never blanks out
// the rest of the scan.
func (e *Engine) EvaluateRepository(ctx context.Context, repo models.Repository, cfg *models.ComplianceConfig) []Finding {
	var findings []Finding

	for _, policyCfg := range cfg.Policies {
		evaluator, ok := e.registry.Get(policyCfg.Type)
		if !ok {
			e.log.WithFields(logrus.Fields{
				"policy_type": policyCfg.Type,
				"repo":        repo.Name,
			}).Warn("no evaluator registered for policy type, skipping")
			continue
		}

		result, err := e.safeEvaluate(ctx, evaluator, repo, policyCfg)
		if err != nil {
			e.log.WithFields(logrus.Fields{
				"policy_type": policyCfg.Type,
				"repo":        repo.Name,
			}).WithError(err).Warn("evaluator failed, treating as no violation")
			continue
		}

		if result != nil && result.Violated {
			findings = append(findings, Finding{Policy: policyCfg, Detail: result.Detail})
		}
	}

	return findings
}

func (e *Engine) safeEvaluate(ctx context.Context, evaluator Evaluator, repo models.Repository, cfg models.PolicyConfig) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("evaluator panicked: %v", r)
		}
	}()
	return evaluator.Evaluate(ctx, repo, cfg)
}
