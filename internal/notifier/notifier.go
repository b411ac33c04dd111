// Package notifier pushes operational alerts to the ops channel. Calls are
// fire-and-forget; a lost alert must never fail a sync run.
package notifier

//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// ReconnectRequired reports that a shop's provider token was rejected
	// and the merchant has to reconnect.
	ReconnectRequired(shop, reason string)

	// RunFailed reports a sync run that ended in an unexpected error.
	RunFailed(shop string, err error)
}
