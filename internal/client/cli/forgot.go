package cli

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/psptechhub/leadcap/internal/client/forms"
	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/psptechhub/leadcap/internal/client/services"
)

// ForgotPasswordScreen requests a password-reset email. After a successful
// request it waits sentDelay, shows the confirmation for sentDisplay and
// then calls onSent (navigation back to login). It never changes the
// session.
type ForgotPasswordScreen struct {
	submitGuard
	auth        services.AuthService
	flash       *Flash
	form        forms.ForgotPasswordForm
	sent        atomic.Bool
	sentDelay   time.Duration
	sentDisplay time.Duration
	notify      func(msg string)
	onSent      func()
}

func NewForgotPasswordScreen(auth services.AuthService, flash *Flash, sentDelay, sentDisplay time.Duration, notify func(string), onSent func()) *ForgotPasswordScreen {
	return &ForgotPasswordScreen{
		auth:        auth,
		flash:       flash,
		sentDelay:   sentDelay,
		sentDisplay: sentDisplay,
		notify:      notify,
		onSent:      onSent,
	}
}

// Submit blocks through the whole confirmation sequence. Cancelling ctx
// aborts the sequence without navigating.
func (s *ForgotPasswordScreen) Submit(ctx context.Context, f forms.ForgotPasswordForm) error {
	if err := s.acquire(); err != nil {
		return err
	}

	s.flash.Stop()
	s.form = f
	if err := forms.Validate(f); err != nil {
		s.release()
		return err
	}

	if err := s.auth.SendPasswordReset(ctx, f.Email); err != nil {
		s.form = forms.ForgotPasswordForm{}
		s.flash.Show(forms.ResetFailureMessage(identity.CodeOf(err)))
		s.release()
		return err
	}
	s.release()

	return s.confirmSent(ctx)
}

func (s *ForgotPasswordScreen) confirmSent(ctx context.Context) error {
	if err := sleepCtx(ctx, s.sentDelay); err != nil {
		return err
	}

	s.sent.Store(true)
	s.notify(forms.MsgResetSent)

	if err := sleepCtx(ctx, s.sentDisplay); err != nil {
		s.sent.Store(false)
		return err
	}

	s.sent.Store(false)
	s.form = forms.ForgotPasswordForm{}
	s.onSent()
	return nil
}

// Sent reports whether the confirmation is on screen.
func (s *ForgotPasswordScreen) Sent() bool { return s.sent.Load() }

func (s *ForgotPasswordScreen) Form() forms.ForgotPasswordForm { return s.form }

func (s *ForgotPasswordScreen) Flash() *Flash { return s.flash }
