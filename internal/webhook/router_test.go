package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repofleet/compliance-bot/models"
)

type stubStats struct {
	summary *models.ComplianceSummary
	err     error
}

func (s stubStats) Summary(_ context.Context) (*models.ComplianceSummary, error) {
	return s.summary, s.err
}

func TestRouter_Healthz(t *testing.T) {
	fixture := newHandlerFixture(t)
	router := NewRouter(fixture.handler, stubStats{}, quietLogger())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ok", recorder.Body.String())
}

func TestRouter_ComplianceSummary(t *testing.T) {
	fixture := newHandlerFixture(t)
	router := NewRouter(fixture.handler, stubStats{
		summary: &models.ComplianceSummary{
			ScanID:            3,
			TotalRepos:        10,
			ViolatingRepos:    2,
			CompliantRepos:    8,
			CompliancePercent: 80,
		},
	}, quietLogger())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/compliance/summary", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var summary models.ComplianceSummary
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &summary))
	assert.Equal(t, int64(8), summary.CompliantRepos)
	assert.Equal(t, float64(80), summary.CompliancePercent)
}

func TestRouter_ComplianceSummaryError(t *testing.T) {
	fixture := newHandlerFixture(t)
	router := NewRouter(fixture.handler, stubStats{err: errors.New("db closed")}, quietLogger())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/compliance/summary", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
