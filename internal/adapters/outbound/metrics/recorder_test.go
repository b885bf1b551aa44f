package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/moneywise/moneywise/internal/adapters/outbound/metrics"
	"github.com/moneywise/moneywise/internal/application"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ application.Observer = (*metrics.Recorder)(nil)

func TestRecorder_NotificationCounters(t *testing.T) {
	r := metrics.New()
	r.NotificationRead(1)
	r.NotificationRead(2)
	r.UnreadChanged(3)
	r.UnreadChanged(1)

	expected := `
# HELP moneywise_notifications_read_total Total number of notifications marked read.
# TYPE moneywise_notifications_read_total counter
moneywise_notifications_read_total 2
# HELP moneywise_notifications_unread Number of unread notifications.
# TYPE moneywise_notifications_unread gauge
moneywise_notifications_unread 1
`
	err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"moneywise_notifications_read_total", "moneywise_notifications_unread")
	require.NoError(t, err)
}

func TestRecorder_SidebarAndNavigation(t *testing.T) {
	r := metrics.New()
	r.SidebarToggled(true)
	r.SidebarToggled(false)
	r.SidebarToggled(true)
	r.Navigated("/dashboard")

	expected := `
# HELP moneywise_sidebar_toggles_total Total number of sidebar toggles by resulting state.
# TYPE moneywise_sidebar_toggles_total counter
moneywise_sidebar_toggles_total{state="closed"} 1
moneywise_sidebar_toggles_total{state="open"} 2
# HELP moneywise_navigations_total Total number of navigation requests.
# TYPE moneywise_navigations_total counter
moneywise_navigations_total 1
`
	err := testutil.GatherAndCompare(r.Registry(), strings.NewReader(expected),
		"moneywise_sidebar_toggles_total", "moneywise_navigations_total")
	require.NoError(t, err)
}

func TestRecorder_ObserveRequest(t *testing.T) {
	r := metrics.New()
	r.ObserveRequest("/api/v1/notifications", http.MethodGet, 200, 5*time.Millisecond)
	r.ObserveRequest("/api/v1/notifications", http.MethodGet, 200, 7*time.Millisecond)
	r.ObserveRequest("/healthz", http.MethodGet, 200, time.Millisecond)

	count, err := testutil.GatherAndCount(r.Registry(), "moneywise_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(r.Registry(), "moneywise_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestRecorder_Handler(t *testing.T) {
	r := metrics.New()
	r.UnreadChanged(4)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "moneywise_notifications_unread 4")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	a := metrics.New()
	b := metrics.New()
	a.Navigated("/x")

	expected := `
# HELP moneywise_navigations_total Total number of navigation requests.
# TYPE moneywise_navigations_total counter
moneywise_navigations_total 0
`
	err := testutil.GatherAndCompare(b.Registry(), strings.NewReader(expected), "moneywise_navigations_total")
	require.NoError(t, err)
}
