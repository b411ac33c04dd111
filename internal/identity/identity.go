// Package identity derives the deterministic handles that make every store
// write an idempotent upsert. The username leads every key so that keys from
// different accounts can never collide, which is what the account-switch purge
// relies on when it filters by prefix.
package identity

import "fmt"

// PostKey is the handle of the mirrored post for (username, postID).
func PostKey(username, postID string) string {
	return fmt.Sprintf("%s-post-%s", username, postID)
}

// ListingKey is the handle of the account's aggregate listing.
func ListingKey(username string) string {
	return fmt.Sprintf("%s-feed-list", username)
}

// FileAltTag is the alt text attached to an uploaded file. It is the only
// durable link from a file back to its owning account and post, so bulk
// cleanup and counting depend on this exact format.
func FileAltTag(username, postID, childID string) string {
	if childID == "" {
		return fmt.Sprintf("%s-post_%s", username, postID)
	}
	return fmt.Sprintf("%s-post_%s_%s", username, postID, childID)
}

// PostKeyPrefix matches every post handle owned by username.
func PostKeyPrefix(username string) string {
	return username + "-post-"
}

// FileAltPrefix matches every file alt tag owned by username.
func FileAltPrefix(username string) string {
	return username + "-post_"
}
