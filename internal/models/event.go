package models

// InboundEvent is one event of a webhook request. It is a closed union:
// TextEvent, LocationEvent and OtherEvent are its only implementations.
type InboundEvent interface {
	ReplyToken() string
	inboundEvent()
}

// TextEvent carries a free-text message.
type TextEvent struct {
	Token   string
	Content string
}

// LocationEvent carries a shared location.
type LocationEvent struct {
	Token     string
	Latitude  float64
	Longitude float64
}

// OtherEvent is any event the bot does not interpret (stickers, follows, postbacks, ...).
// Token is empty for events that cannot be replied to.
type OtherEvent struct {
	Token string
	Type  string
}

func (e TextEvent) ReplyToken() string     { return e.Token }
func (e LocationEvent) ReplyToken() string { return e.Token }
func (e OtherEvent) ReplyToken() string    { return e.Token }

func (TextEvent) inboundEvent()     {}
func (LocationEvent) inboundEvent() {}
func (OtherEvent) inboundEvent()    {}
