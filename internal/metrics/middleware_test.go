package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}/state", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	pattern := "/players/{playerID}/state"
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418"))

	for _, id := range []string{"alice", "bob"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/"+id+"/state", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.InDelta(t, before+2, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, pattern, "418")), 1e-9)
	assert.InDelta(t, 0, testutil.ToFloat64(HTTPRequestsInFlight), 1e-9)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.InDelta(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, PathUnmatched, "404")), 1e-9)
}

func TestRegisterGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	sessions, clients := 3, 7

	require.NoError(t, RegisterGauges(reg, func() int { return sessions }, func() int { return clients }))
	assert.Error(t, RegisterGauges(reg, func() int { return 0 }, func() int { return 0 }), "duplicate registration")

	count, err := testutil.GatherAndCount(reg, MetricNameActiveSessions, MetricNameSSEClients)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	families, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		values[mf.GetName()] = mf.GetMetric()[0].GetGauge().GetValue()
	}
	assert.Equal(t, 3.0, values[MetricNameActiveSessions])
	assert.Equal(t, 7.0, values[MetricNameSSEClients])
}
