// Package services contains application services for the lead-capture
// client. This file defines the authentication service: sign-in, sign-up,
// password reset, sign-out and restoring the session persisted by a
// previous run.
package services

import (
	"context"
	"errors"
	"sync"

	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/psptechhub/leadcap/internal/client/repositories/sessionstore"
	"github.com/psptechhub/leadcap/internal/client/session"
	"github.com/psptechhub/leadcap/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn/SignUp: call the provider, persist the email (and token when
//     issued), then mark the session authenticated. Persistence failures are
//     logged and do not fail the operation.
//   - SendPasswordReset: ask the provider to send a reset email; never
//     touches the session.
//   - SignOut: always ends unauthenticated, whatever the provider or store
//     report.
//   - Restore: seed the session from the store at launch.
//
// Provider failures are returned as *identity.AuthError.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password string) error
	SendPasswordReset(ctx context.Context, email string) error
	SignOut(ctx context.Context)
	Restore(ctx context.Context) session.Session
}

type authService struct {
	provider identity.Provider
	store    sessionstore.Repository
	state    *session.Store
	log      logging.Logger

	// mu serializes writes to store and state; gen counts user-driven
	// sign-ins and sign-outs.
	mu  sync.Mutex
	gen uint64
}

func NewAuthService(provider identity.Provider, store sessionstore.Repository, state *session.Store, log logging.Logger) AuthService {
	return &authService{provider: provider, store: store, state: state, log: log}
}

func (a *authService) SignIn(ctx context.Context, email, password string) error {
	cred, err := a.provider.SignIn(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "sign-in failed", "code", identity.CodeOf(err))
		return err
	}
	a.establish(ctx, email, cred)
	a.log.Info(ctx, "signed in", "user_id", cred.UserID)
	return nil
}

func (a *authService) SignUp(ctx context.Context, email, password string) error {
	cred, err := a.provider.CreateAccount(ctx, email, password)
	if err != nil {
		a.log.Info(ctx, "sign-up failed", "code", identity.CodeOf(err))
		return err
	}
	a.establish(ctx, email, cred)
	a.log.Info(ctx, "account created", "user_id", cred.UserID)
	return nil
}

// establish persists the credential and flips the session. The email as
// entered is what gets stored.
func (a *authService) establish(ctx context.Context, email string, cred *identity.Credential) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gen++

	if err := a.store.Set(ctx, sessionstore.KeyUserEmail, email); err != nil {
		a.log.Error(ctx, "failed to persist email", "error", err)
	}
	if cred.IDToken != "" {
		if err := a.store.Set(ctx, sessionstore.KeySessionToken, cred.IDToken); err != nil {
			a.log.Error(ctx, "failed to persist session token", "error", err)
		}
	}

	a.state.SignIn(session.Session{
		UserID:   cred.UserID,
		Email:    email,
		IssuedAt: cred.IssuedAt,
	})
}

func (a *authService) SendPasswordReset(ctx context.Context, email string) error {
	if err := a.provider.SendPasswordReset(ctx, email); err != nil {
		a.log.Info(ctx, "password reset failed", "code", identity.CodeOf(err))
		return err
	}
	a.log.Info(ctx, "password reset sent")
	return nil
}

func (a *authService) SignOut(ctx context.Context) {
	if err := a.provider.SignOut(ctx); err != nil {
		a.log.Warn(ctx, "provider sign-out failed", "error", err)
	}
	a.mu.Lock()
	a.gen++
	a.clear(ctx)
	a.state.SignOut()
	a.mu.Unlock()
	a.log.Info(ctx, "signed out")
}

func (a *authService) clear(ctx context.Context) {
	for _, key := range []string{sessionstore.KeyUserEmail, sessionstore.KeySessionToken} {
		if err := a.store.Delete(ctx, key); err != nil {
			a.log.Error(ctx, "failed to delete stored key", "key", key, "error", err)
		}
	}
}

// Restore reads the store and seeds the session. A stored email alone
// means authenticated; without one the session is left as it is. When a
// token is stored and the provider can verify it, a rejected token signs
// the user out instead; an unreachable provider falls back to the stored
// email. If a sign-in or sign-out completes while Restore is running, its
// result is discarded and neither the store nor the session is touched.
func (a *authService) Restore(ctx context.Context) session.Session {
	a.mu.Lock()
	start := a.gen
	a.mu.Unlock()

	email, ok, err := a.store.Get(ctx, sessionstore.KeyUserEmail)
	if err != nil {
		a.log.Error(ctx, "failed to read stored email", "error", err)
	}
	if err != nil || !ok || email == "" {
		return session.Session{State: session.Unauthenticated}
	}

	sess := session.Session{Email: email}

	token, hasToken, err := a.store.Get(ctx, sessionstore.KeySessionToken)
	if err != nil {
		a.log.Error(ctx, "failed to read session token", "error", err)
	}
	verifier, canVerify := a.provider.(identity.Verifier)

	rejected := false
	if hasToken && canVerify {
		cred, err := verifier.VerifySession(ctx, token)
		switch {
		case err == nil:
			sess.UserID = cred.UserID
			sess.IssuedAt = cred.IssuedAt
		case errors.Is(err, context.Canceled) || identity.CodeOf(err) == identity.CodeNetworkRequestFailed:
			a.log.Warn(ctx, "session not verified, using stored email", "error", err)
		default:
			a.log.Info(ctx, "stored session rejected", "code", identity.CodeOf(err))
			rejected = true
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.gen != start {
		a.log.Info(ctx, "restored session superseded", "rejected", rejected)
		return a.state.Current()
	}
	if rejected {
		a.clear(ctx)
		a.state.SignOut()
		return a.state.Current()
	}

	a.state.SignIn(sess)
	a.log.Info(ctx, "session restored", "verified", sess.UserID != "")
	return a.state.Current()
}
