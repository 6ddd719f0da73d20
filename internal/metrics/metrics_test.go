package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagationFailed(t *testing.T) {
	before := testutil.ToFloat64(propagationFailures.WithLabelValues("client"))
	PropagationFailed("client")
	assert.Equal(t, before+1, testutil.ToFloat64(propagationFailures.WithLabelValues("client")))
}

func TestObserveRequest_UnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404"))
	ObserveRequest("GET", "", http.StatusNotFound, 5*time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	ProgressChanged("step", "mark")
	StorePinged("memory", errors.New("down"), time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "onboarding_progress_changes_total")
	assert.Contains(t, body, `onboarding_store_ping_duration_seconds_count{driver="memory",status="error"}`)
}
