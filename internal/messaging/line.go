// Package messaging adapts the LINE Messaging API SDK to the bot's event and reply types.
package messaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jordanwl/covid-19-bot/internal/models"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
)

// SignatureHeader carries the HMAC-SHA256 signature of the webhook body.
const SignatureHeader = "X-Line-Signature"

// LineMessenger validates and parses LINE webhooks and sends replies.
type LineMessenger struct {
	channelSecret string
	api           *messaging_api.MessagingApiAPI
}

// Option configures the underlying messaging API client.
type Option = messaging_api.MessagingApiAPIOption

// WithEndpoint points the reply client at another API host.
func WithEndpoint(endpoint string) Option {
	return messaging_api.WithEndpoint(endpoint)
}

// WithHTTPClient sets the HTTP client used for replies.
func WithHTTPClient(c *http.Client) Option {
	return messaging_api.WithHTTPClient(c)
}

func NewLineMessenger(channelSecret, channelToken string, opts ...Option) (*LineMessenger, error) {
	api, err := messaging_api.NewMessagingApiAPI(channelToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("messaging: failed to create LINE client: %w", err)
	}
	return &LineMessenger{channelSecret: channelSecret, api: api}, nil
}

// ParseEvents checks signature against body and decodes the event list in order.
// It returns models.ErrSignatureInvalid or models.ErrMalformedPayload on failure.
func (m *LineMessenger) ParseEvents(body []byte, signature string) ([]models.InboundEvent, error) {
	if signature == "" {
		return nil, models.ErrSignatureInvalid
	}

	req, err := http.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("messaging: %v: %w", err, models.ErrMalformedPayload)
	}
	req.Header.Set(SignatureHeader, signature)

	cb, err := webhook.ParseRequest(m.channelSecret, req)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			return nil, models.ErrSignatureInvalid
		}
		return nil, fmt.Errorf("messaging: %v: %w", err, models.ErrMalformedPayload)
	}

	events := make([]models.InboundEvent, 0, len(cb.Events))
	for _, e := range cb.Events {
		events = append(events, toInboundEvent(e))
	}
	return events, nil
}

// SendReply sends payload as a single text message using replyToken.
func (m *LineMessenger) SendReply(ctx context.Context, replyToken string, payload models.ReplyPayload) error {
	_, err := m.api.WithContext(ctx).ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			&messaging_api.TextMessage{Text: payload.Text},
		},
	})
	if err != nil {
		return fmt.Errorf("messaging: %v: %w", err, models.ErrReplyDeliveryFailed)
	}
	return nil
}

func toInboundEvent(e webhook.EventInterface) models.InboundEvent {
	if ev, ok := e.(webhook.MessageEvent); ok {
		switch msg := ev.Message.(type) {
		case webhook.TextMessageContent:
			return models.TextEvent{Token: ev.ReplyToken, Content: msg.Text}
		case webhook.LocationMessageContent:
			return models.LocationEvent{Token: ev.ReplyToken, Latitude: msg.Latitude, Longitude: msg.Longitude}
		case nil:
			return models.OtherEvent{Token: ev.ReplyToken, Type: "message"}
		default:
			return models.OtherEvent{Token: ev.ReplyToken, Type: "message/" + msg.GetType()}
		}
	}
	return models.OtherEvent{Token: replyToken(e), Type: e.GetType()}
}

// replyToken returns the token of every event type LINE accepts replies to, and ""
// for the rest (unfollow, leave, memberLeft, unsend, ...).
func replyToken(e webhook.EventInterface) string {
	switch ev := e.(type) {
	case webhook.MessageEvent:
		return ev.ReplyToken
	case webhook.FollowEvent:
		return ev.ReplyToken
	case webhook.JoinEvent:
		return ev.ReplyToken
	case webhook.PostbackEvent:
		return ev.ReplyToken
	case webhook.BeaconEvent:
		return ev.ReplyToken
	case webhook.AccountLinkEvent:
		return ev.ReplyToken
	case webhook.MemberJoinedEvent:
		return ev.ReplyToken
	case webhook.ThingsEvent:
		return ev.ReplyToken
	case webhook.VideoPlayCompleteEvent:
		return ev.ReplyToken
	}
	return ""
}
