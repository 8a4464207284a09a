// Package users persists accounts and password-reset requests for the local
// identity provider.
package users

import "context"

// Repository defines account storage. Lookups return common.ErrorNotFound
// when no row matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	SetDisabled(ctx context.Context, id string, disabled bool) error
	RecordPasswordReset(ctx context.Context, r *PasswordReset) error
	ListPasswordResets(ctx context.Context, email string) ([]PasswordReset, error)
}
