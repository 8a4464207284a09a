package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/psptechhub/leadcap/internal/client/repositories/users"
	"github.com/psptechhub/leadcap/internal/common"
	"github.com/psptechhub/leadcap/internal/cryptox"
	"github.com/psptechhub/leadcap/internal/dbx"
	"github.com/psptechhub/leadcap/internal/logging"
)

const minPasswordLength = 6

// LocalProvider keeps accounts in the client's own database and issues
// HS256 session tokens. Password-reset requests are recorded in the
// password_resets table since there is no mail transport.
type LocalProvider struct {
	db       *sql.DB
	users    users.Repository
	secret   []byte
	ttl      time.Duration
	log      logging.Logger
	validate *validator.Validate
	now      func() time.Time
}

func NewLocalProvider(db *sql.DB, secret []byte, ttl time.Duration, log logging.Logger) *LocalProvider {
	return &LocalProvider{
		db:       db,
		users:    users.NewSQLiteRepository(db),
		secret:   secret,
		ttl:      ttl,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (p *LocalProvider) normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := p.validate.Var(email, "required,email"); err != nil {
		return "", newAuthError(CodeInvalidEmail, err)
	}
	return email, nil
}

func (p *LocalProvider) issue(u *users.User) (*Credential, error) {
	now := p.now()
	token, err := GenerateToken(u.ID, u.Email, p.secret, p.ttl, now)
	if err != nil {
		return nil, newAuthError(CodeInternal, fmt.Errorf("failed to sign token: %w", err))
	}
	return &Credential{UserID: u.ID, Email: u.Email, IDToken: token, IssuedAt: now}, nil
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Credential, error) {
	email, err := p.normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	u, err := p.users.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, newAuthError(CodeUserNotFound, err)
	}
	if err != nil {
		return nil, newAuthError(CodeInternal, err)
	}
	if u.Disabled {
		return nil, newAuthError(CodeUserDisabled, nil)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)
	if !cryptox.VerifyPassword(pw, u.Salt, u.Verifier) {
		return nil, newAuthError(CodeWrongPassword, nil)
	}

	p.log.Info(ctx, "local sign-in", "user_id", u.ID)
	return p.issue(u)
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*Credential, error) {
	email, err := p.normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if len(password) < minPasswordLength {
		return nil, newAuthError(CodeWeakPassword, nil)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)
	salt, verifier := cryptox.HashPassword(pw)

	u := &users.User{
		ID:        uuid.NewString(),
		Email:     email,
		Salt:      salt,
		Verifier:  verifier,
		CreatedAt: p.now().UTC(),
	}

	err = dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)
		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return newAuthError(CodeEmailAlreadyInUse, nil)
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		if CodeOf(err) != "" {
			return nil, err
		}
		return nil, newAuthError(CodeInternal, err)
	}

	p.log.Info(ctx, "local account created", "user_id", u.ID)
	return p.issue(u)
}

func (p *LocalProvider) SendPasswordReset(ctx context.Context, email string) error {
	email, err := p.normalizeEmail(email)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)
		u, err := repo.GetByEmail(ctx, email)
		if errors.Is(err, common.ErrorNotFound) {
			return newAuthError(CodeUserNotFound, err)
		}
		if err != nil {
			return err
		}
		return repo.RecordPasswordReset(ctx, &users.PasswordReset{
			ID:          uuid.NewString(),
			UserID:      u.ID,
			Email:       u.Email,
			RequestedAt: p.now().UTC(),
		})
	})
	if err != nil {
		if CodeOf(err) != "" {
			return err
		}
		return newAuthError(CodeInternal, err)
	}

	p.log.Info(ctx, "local password reset recorded", "email", email)
	return nil
}

// SignOut has nothing to revoke for local tokens.
func (p *LocalProvider) SignOut(ctx context.Context) error {
	return nil
}

// VerifySession checks the token signature and expiry and that the account
// still exists and is enabled.
func (p *LocalProvider) VerifySession(ctx context.Context, idToken string) (*Credential, error) {
	claims, err := ParseToken(idToken, p.secret)
	if errors.Is(err, common.ErrTokenExpired) {
		return nil, newAuthError(CodeTokenExpired, err)
	}
	if err != nil {
		return nil, newAuthError(CodeInvalidToken, err)
	}

	u, err := p.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, newAuthError(CodeUserNotFound, err)
	}
	if err != nil {
		return nil, newAuthError(CodeInternal, err)
	}
	if u.Disabled {
		return nil, newAuthError(CodeUserDisabled, nil)
	}

	var issued time.Time
	if claims.IssuedAt != nil {
		issued = claims.IssuedAt.Time
	}
	return &Credential{UserID: u.ID, Email: u.Email, IDToken: idToken, IssuedAt: issued}, nil
}
