package metrics

import (
	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the bot
type Metrics struct {
	WebhookRequests *prometheus.CounterVec
	Events          *prometheus.CounterVec
	Replies         *prometheus.CounterVec
	ReplyFailures   prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		WebhookRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "covidbot_webhook_requests_total",
			Help: "Webhook requests by result (accepted, signature_invalid, malformed)",
		}, []string{"status"}),
		Events: f.NewCounterVec(prometheus.CounterOpts{
			Name: "covidbot_events_total",
			Help: "Inbound events by kind (text, location, other)",
		}, []string{"kind"}),
		Replies: f.NewCounterVec(prometheus.CounterOpts{
			Name: "covidbot_replies_total",
			Help: "Replies produced by outcome",
		}, []string{"outcome"}),
		ReplyFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "covidbot_reply_failures_total",
			Help: "Replies the messaging platform did not accept",
		}),
	}
}

func (m *Metrics) ObserveWebhook(status string) {
	m.WebhookRequests.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveEvent(kind string) {
	m.Events.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveReply(outcome models.ReplyOutcome) {
	m.Replies.WithLabelValues(string(outcome)).Inc()
}

func (m *Metrics) IncrementReplyFailures() {
	m.ReplyFailures.Inc()
}
