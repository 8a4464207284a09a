package users

import "time"

// User is an account held by the local identity provider.
type User struct {
	ID        string
	Email     string
	Salt      []byte
	Verifier  []byte
	Disabled  bool
	CreatedAt time.Time
}

// PasswordReset records one password-reset request. The local provider has
// no mail transport, so requests are kept here for an operator to act on.
type PasswordReset struct {
	ID          string
	UserID      string
	Email       string
	RequestedAt time.Time
}
