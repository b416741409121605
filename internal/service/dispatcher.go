package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/rs/zerolog"
)

type TextNormalizer interface {
	Normalize(raw string) models.ResolvedIntent
}

type CoordinateResolver interface {
	ResolveFromCoordinates(ctx context.Context, lat, lon float64) models.ResolvedIntent
}

type AddressLookup interface {
	ResolveAddress(ctx context.Context, address string) (models.ResolvedIntent, error)
}

type CaseFetcher interface {
	FetchCaseRecord(ctx context.Context, id models.PrefectureID) (models.CaseRecord, error)
}

type ReplyFormatter interface {
	Format(intent models.ResolvedIntent, record *models.CaseRecord, fetchErr error) models.ReplyPayload
}

type ReplySender interface {
	SendReply(ctx context.Context, replyToken string, payload models.ReplyPayload) error
}

type Recorder interface {
	ObserveEvent(kind string)
	ObserveReply(outcome models.ReplyOutcome)
	IncrementReplyFailures()
}

// Dependencies wires a Dispatcher. Addresses and Metrics are optional.
type Dependencies struct {
	Normalizer TextNormalizer
	Locations  CoordinateResolver
	Addresses  AddressLookup
	Cases      CaseFetcher
	Formatter  ReplyFormatter
	Sender     ReplySender
	Metrics    Recorder
}

// EventResult records what happened to one event.
type EventResult struct {
	ReplyToken string
	Intent     models.ResolvedIntent
	Reply      models.ReplyPayload
	Sent       bool
	Err        error
}

// Dispatcher runs the per-event pipeline: resolve, fetch, format, reply.
// Events are handled in order and share nothing, so a failure in one never
// affects another.
type Dispatcher struct {
	deps Dependencies
}

func NewDispatcher(deps Dependencies) *Dispatcher {
	if deps.Metrics == nil {
		deps.Metrics = nopRecorder{}
	}
	return &Dispatcher{deps: deps}
}

// Dispatch answers every event and reports one result per event, in order.
func (d *Dispatcher) Dispatch(ctx context.Context, events []models.InboundEvent) []EventResult {
	results := make([]EventResult, 0, len(events))
	for i, ev := range events {
		results = append(results, d.handleEvent(ctx, i, ev))
	}
	return results
}

// Resolve maps one event to a ResolvedIntent.
func (d *Dispatcher) Resolve(ctx context.Context, ev models.InboundEvent) models.ResolvedIntent {
	switch e := ev.(type) {
	case models.TextEvent:
		intent := d.deps.Normalizer.Normalize(e.Content)
		if intent.Kind == models.IntentUnrecognized && d.deps.Addresses != nil {
			return d.resolveAddress(ctx, e.Content)
		}
		return intent
	case models.LocationEvent:
		return d.deps.Locations.ResolveFromCoordinates(ctx, e.Latitude, e.Longitude)
	case models.OtherEvent:
		return models.Unrecognized()
	default:
		return models.Unrecognized()
	}
}

// Answer builds the reply for intent, fetching case data for prefecture queries only.
func (d *Dispatcher) Answer(ctx context.Context, intent models.ResolvedIntent) models.ReplyPayload {
	if intent.Kind != models.IntentPrefectureQuery {
		return d.deps.Formatter.Format(intent, nil, nil)
	}

	record, err := d.deps.Cases.FetchCaseRecord(ctx, intent.Prefecture)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("prefecture", string(intent.Prefecture)).Msg("case data unavailable")
		return d.deps.Formatter.Format(intent, nil, err)
	}
	return d.deps.Formatter.Format(intent, &record, nil)
}

func (d *Dispatcher) handleEvent(ctx context.Context, index int, ev models.InboundEvent) (result EventResult) {
	logger := zerolog.Ctx(ctx).With().Int("event", index).Str("kind", eventKind(ev)).Logger()
	ctx = logger.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("service: event %d panicked: %v", index, r)
			logger.Error().Err(result.Err).Msg("event aborted")
		}
	}()

	result.ReplyToken = ev.ReplyToken()

	d.deps.Metrics.ObserveEvent(eventKind(ev))

	result.Intent = d.Resolve(ctx, ev)
	result.Reply = d.Answer(ctx, result.Intent)
	d.deps.Metrics.ObserveReply(result.Reply.Outcome)

	logger.Info().
		Stringer("intent", result.Intent).
		Str("outcome", string(result.Reply.Outcome)).
		Msg("event resolved")

	if result.ReplyToken == "" {
		logger.Debug().Msg("event has no reply token, not replying")
		return result
	}

	if err := d.deps.Sender.SendReply(ctx, result.ReplyToken, result.Reply); err != nil {
		d.deps.Metrics.IncrementReplyFailures()
		result.Err = err
		logger.Error().Err(err).Msg("reply delivery failed")
		return result
	}
	result.Sent = true
	return result
}

func (d *Dispatcher) resolveAddress(ctx context.Context, text string) models.ResolvedIntent {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Unrecognized()
	}
	intent, err := d.deps.Addresses.ResolveAddress(ctx, text)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("address search failed")
		return models.Unrecognized()
	}
	return intent
}

func eventKind(ev models.InboundEvent) string {
	switch ev.(type) {
	case models.TextEvent:
		return "text"
	case models.LocationEvent:
		return "location"
	default:
		return "other"
	}
}

type nopRecorder struct{}

func (nopRecorder) ObserveEvent(string)              {}
func (nopRecorder) ObserveReply(models.ReplyOutcome) {}
func (nopRecorder) IncrementReplyFailures()          {}
