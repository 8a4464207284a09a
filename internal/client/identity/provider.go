// Package identity defines the contract with the identity provider that
// verifies credentials, creates accounts and dispatches password-reset
// emails, together with two implementations:
//
//   - FirebaseClient talks to the Firebase Identity Toolkit REST API.
//   - LocalProvider keeps accounts in the client's SQLite database.
//
// Failures are reported as *AuthError carrying one of the closed set of
// Code values; screens map those codes to fixed user messages.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Code is a provider error code in the "auth/..." namespace.
type Code string

const (
	CodeInvalidEmail         Code = "auth/invalid-email"
	CodeUserDisabled         Code = "auth/user-disabled"
	CodeUserNotFound         Code = "auth/user-not-found"
	CodeWrongPassword        Code = "auth/wrong-password"
	CodeInvalidCredential    Code = "auth/invalid-credential"
	CodeEmailAlreadyInUse    Code = "auth/email-already-in-use"
	CodeWeakPassword         Code = "auth/weak-password"
	CodeTooManyRequests      Code = "auth/too-many-requests"
	CodeInvalidToken         Code = "auth/invalid-user-token"
	CodeTokenExpired         Code = "auth/user-token-expired"
	CodeNetworkRequestFailed Code = "auth/network-request-failed"
	CodeInternal             Code = "auth/internal-error"
)

// AuthError is returned by every Provider operation that fails.
type AuthError struct {
	Code Code
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

func newAuthError(code Code, err error) *AuthError {
	return &AuthError{Code: code, Err: err}
}

// CodeOf extracts the provider code from err, or "" when err carries none.
func CodeOf(err error) Code {
	var ae *AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// Credential describes a signed-in user.
type Credential struct {
	UserID   string
	Email    string
	IDToken  string
	IssuedAt time.Time
}

// Provider is the identity provider consumed by the client.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (*Credential, error)
	CreateAccount(ctx context.Context, email, password string) (*Credential, error)
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context) error
}

// Verifier is implemented by providers that can confirm a stored session
// token is still valid.
type Verifier interface {
	VerifySession(ctx context.Context, idToken string) (*Credential, error)
}
