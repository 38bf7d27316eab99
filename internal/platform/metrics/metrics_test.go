package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequestCounts(t *testing.T) {
	r := New("workly")

	r.ObserveRequest(http.MethodGet, "/api/v1/tasks", http.StatusOK, 15*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "/api/v1/tasks", http.StatusOK, 5*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "/api/v1/tasks", http.StatusForbidden, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.requestCounter.WithLabelValues("workly", "GET", "/api/v1/tasks", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.statusCategory.WithLabelValues("workly", "4xx", "GET", "/api/v1/tasks")))
}

func TestDomainCounters(t *testing.T) {
	r := New("workly")

	r.CompanyRegistered()
	r.LoginFailed("employee", "bad_password")
	r.LoginFailed("employee", "bad_password")
	r.LoginSucceeded("company")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.registrations))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.loginFailures.WithLabelValues("employee", "bad_password")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.logins.WithLabelValues("company")))
}

func TestHandlerServesTextFormat(t *testing.T) {
	r := New("workly")
	r.CompanyRegistered()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "workly_company_registrations_total 1")
}
