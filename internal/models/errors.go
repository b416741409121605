package models

import (
	"errors"
	"fmt"
)

var (
	// ErrSignatureInvalid rejects a webhook request before any event is processed.
	ErrSignatureInvalid = errors.New("invalid webhook signature")
	// ErrMalformedPayload rejects a webhook request whose body cannot be parsed.
	ErrMalformedPayload = errors.New("malformed webhook payload")
	// ErrUpstreamDataUnavailable covers network, status and decode failures of the case-data feed.
	ErrUpstreamDataUnavailable = errors.New("upstream case data unavailable")
	// ErrCaseRecordNotFound means zero or several snapshot records matched a prefecture.
	ErrCaseRecordNotFound = fmt.Errorf("%w: no unique case record for prefecture", ErrUpstreamDataUnavailable)
	// ErrReplyDeliveryFailed wraps messaging platform send failures.
	ErrReplyDeliveryFailed = errors.New("reply delivery failed")
	// ErrInvalidCoordinates is returned for latitude/longitude outside the valid range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)
