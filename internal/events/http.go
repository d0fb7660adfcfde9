// Package events declares the event payloads published on the bus. Emitters
// publish these; subscribers (tracing, logging) pick the ones they care about.
package events

import (
	"net/http"
	"time"
)

// HTTPStart marks an incoming HTTP request. The request ID travels in the
// context, not the payload.
type HTTPStart struct {
	Request *http.Request
}

// HTTPFinish marks the end of request handling.
type HTTPFinish struct {
	Request  *http.Request
	Status   int
	Duration time.Duration
}
