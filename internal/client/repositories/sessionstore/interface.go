// Package sessionstore is the persisted key/value store that survives client
// restarts. The client keeps the last signed-in email in it (KeyUserEmail)
// and, when the identity provider issues one, the session token.
package sessionstore

import "context"

const (
	KeyUserEmail    = "userEmail"
	KeySessionToken = "sessionToken"
	// KeyLocalTokenSecret holds the signing secret generated for the local
	// identity provider when none is configured.
	KeyLocalTokenSecret = "localTokenSecret"
)

// Repository stores string values by key. Get reports ok == false for an
// absent key; Delete of an absent key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
