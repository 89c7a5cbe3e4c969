package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vogue360/studio/internal/model"
	"github.com/vogue360/studio/internal/notify"
	"github.com/vogue360/studio/internal/store"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMutationCounterFollowsStore(t *testing.T) {
	m := New()
	catalog := store.NewCatalog()
	catalog.Observe(m.ObserveMutation)

	item := catalog.Add(model.CatalogItem{Name: "Beret"})
	catalog.Remove(item.ID)
	catalog.Remove(item.ID)

	text := scrape(t, m)
	assert.Contains(t, text, `vogue_record_mutations_total{collection="catalog",op="add"} 1`)
	assert.Contains(t, text, `vogue_record_mutations_total{collection="catalog",op="remove"} 1`)
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.ObserveNotification(notify.Error)
	m.ObserveLogin(LoginFailure)
	m.ObserveBookingRequest("filed")

	text := scrape(t, m)
	assert.Contains(t, text, `vogue_notifications_total{severity="error"} 1`)
	assert.Contains(t, text, `vogue_admin_logins_total{outcome="failure"} 1`)
	assert.Contains(t, text, `vogue_booking_requests_total{outcome="filed"} 1`)
}
