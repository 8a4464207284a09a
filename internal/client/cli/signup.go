package cli

import (
	"context"

	"github.com/psptechhub/leadcap/internal/client/forms"
	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/psptechhub/leadcap/internal/client/services"
)

// SignupScreen creates an account and signs it in.
type SignupScreen struct {
	submitGuard
	auth  services.AuthService
	flash *Flash
	form  forms.SignupForm
}

func NewSignupScreen(auth services.AuthService, flash *Flash) *SignupScreen {
	return &SignupScreen{auth: auth, flash: flash}
}

func (s *SignupScreen) Submit(ctx context.Context, f forms.SignupForm) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.form = forms.SignupForm{Email: f.Email}
	if err := forms.Validate(f); err != nil {
		return err
	}

	if err := s.auth.SignUp(ctx, f.Email, f.Password); err != nil {
		s.form = forms.SignupForm{}
		s.flash.Show(forms.SignupFailureMessage(identity.CodeOf(err)))
		return err
	}

	s.form = forms.SignupForm{}
	return nil
}

func (s *SignupScreen) Form() forms.SignupForm { return s.form }

func (s *SignupScreen) Flash() *Flash { return s.flash }
