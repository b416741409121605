package models

// ReplyOutcome labels why a reply was produced. Replies for "unrecognized",
// "no_data" and "upstream_error" share the same text; the label keeps them apart in logs and metrics.
type ReplyOutcome string

const (
	OutcomeHelp          ReplyOutcome = "help"
	OutcomeCases         ReplyOutcome = "cases"
	OutcomeUnrecognized  ReplyOutcome = "unrecognized"
	OutcomeNoData        ReplyOutcome = "no_data"
	OutcomeUpstreamError ReplyOutcome = "upstream_error"
)

// ReplyPayload is the text message sent back through the messaging platform.
type ReplyPayload struct {
	Text    string
	Outcome ReplyOutcome
}
