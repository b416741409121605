package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanwl/covid-19-bot/internal/handler"
	"github.com/jordanwl/covid-19-bot/internal/messaging"
	"github.com/jordanwl/covid-19-bot/internal/metrics"
	"github.com/jordanwl/covid-19-bot/internal/middleware"
	"github.com/jordanwl/covid-19-bot/internal/models"
	"github.com/jordanwl/covid-19-bot/internal/normalizer"
	"github.com/jordanwl/covid-19-bot/internal/prefecture"
	"github.com/jordanwl/covid-19-bot/internal/reply"
	"github.com/jordanwl/covid-19-bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCases struct{}

func (staticCases) FetchCaseRecord(_ context.Context, id models.PrefectureID) (models.CaseRecord, error) {
	return models.CaseRecord{Region: string(id), InfectedCount: 1}, nil
}

type noGeocoder struct{}

func (noGeocoder) ReverseGeocode(context.Context, float64, float64) (*models.AdministrativeRegion, error) {
	return nil, nil
}

type countingSender struct {
	calls int
}

func (s *countingSender) SendReply(context.Context, string, models.ReplyPayload) error {
	s.calls++
	return nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *countingSender) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry, err := prefecture.Default()
	require.NoError(t, err)

	n := normalizer.New(registry)
	sender := &countingSender{}
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	dispatcher := service.NewDispatcher(service.Dependencies{
		Normalizer: n,
		Locations:  service.NewLocationResolver(noGeocoder{}, n, service.TokenFirst),
		Cases:      staticCases{},
		Formatter:  reply.NewFormatter(registry),
		Sender:     sender,
		Metrics:    m,
	})

	messenger, err := messaging.NewLineMessenger("secret", "token")
	require.NoError(t, err)

	r := NewRouter(Handlers{
		Webhook: handler.NewWebhookHandler(messenger, dispatcher, m),
		Resolve: handler.NewResolveHandler(dispatcher, registry),
	}, reg)
	return r, sender
}

func TestRouter_Health(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_CallbackRejectsBadSignature(t *testing.T) {
	r, sender := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/callback", bytes.NewReader([]byte(`{"events":[]}`)))
	req.Header.Set(messaging.SignatureHeader, "invalid")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, sender.calls)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `covidbot_webhook_requests_total{status="signature_invalid"} 1`)
}

func TestRouter_Resolve(t *testing.T) {
	r, sender := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resolve?q=Hokkaid%C5%8D", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body handler.IntentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "prefecture", body.Intent)
	require.NotNil(t, body.Prefecture)
	assert.Equal(t, prefecture.Hokkaido, body.Prefecture.ID)
	assert.Equal(t, 0, sender.calls)
}

func TestRouter_LocateUnknownRegion(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locate?lat=0&lon=0", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"intent":"unrecognized"}`, w.Body.String())
}

func TestRouter_Swagger(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/callback")
}
