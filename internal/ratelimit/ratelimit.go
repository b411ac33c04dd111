package ratelimit

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Transport paces outbound requests through a token bucket before handing
// them to the underlying RoundTripper. Every remote API this service talks to
// throttles hard, so all outbound clients wrap their transport in one of
// these.
type Transport struct {
	Base    http.RoundTripper
	Limiter *rate.Limiter
}

// NewTransport allows requestsPerSecond sustained with the given burst.
// Example: NewTransport(nil, 2, 4) -> 2 req/s, bursts of 4.
func NewTransport(base http.RoundTripper, requestsPerSecond float64, burst int) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		Base:    base,
		Limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// RoundTrip waits for a token, honoring the request's context, then forwards
// the request unchanged.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.Limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.Base.RoundTrip(req)
}
