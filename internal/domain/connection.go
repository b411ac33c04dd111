package domain

import "time"

// ConnectionRecord binds one shop to one provider account. Username is empty
// until the first successful sync; the account-switch check compares it
// against the username the provider reports and rewrites it after any switch
// has been purged.
type ConnectionRecord struct {
	ID          int
	Shop        string
	Username    string
	AccessToken string    // provider token
	ExpiresAt   time.Time // provider token expiry
	StoreToken  string    // admin API token for the shop's object store
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenExpired reports whether the provider token is past its expiry.
func (c ConnectionRecord) TokenExpired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
