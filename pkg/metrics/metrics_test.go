package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentSaved(t *testing.T) {
	m := New()
	m.DocumentSaved("quotation", 3)
	m.DocumentSaved("quotation", 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.DocumentsSaved.WithLabelValues("quotation")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.ItemsWritten.WithLabelValues("quotation")))
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveRequest(http.MethodGet, "/api/customers", 200, 10*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(a.HTTPRequests.WithLabelValues("GET", "/api/customers", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.HTTPRequests.WithLabelValues("GET", "/api/customers", "200")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodPost, "/api/quotations", 201, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "facturacion_http_requests_total"))
}
