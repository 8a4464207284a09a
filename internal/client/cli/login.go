package cli

import (
	"context"

	"github.com/psptechhub/leadcap/internal/client/forms"
	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/psptechhub/leadcap/internal/client/services"
)

// LoginScreen signs an existing user in.
type LoginScreen struct {
	submitGuard
	auth  services.AuthService
	flash *Flash
	form  forms.LoginForm
}

func NewLoginScreen(auth services.AuthService, flash *Flash) *LoginScreen {
	return &LoginScreen{auth: auth, flash: flash}
}

// Submit validates f and signs in. Validation failures return
// forms.ValidationErrors and keep the email; a provider failure clears the
// form and flashes the mapped message. On success the session store flips
// and the router leaves this screen.
func (s *LoginScreen) Submit(ctx context.Context, f forms.LoginForm) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.form = forms.LoginForm{Email: f.Email}
	if err := forms.Validate(f); err != nil {
		return err
	}

	if err := s.auth.SignIn(ctx, f.Email, f.Password); err != nil {
		s.form = forms.LoginForm{}
		s.flash.Show(forms.LoginFailureMessage(identity.CodeOf(err)))
		return err
	}

	s.form = forms.LoginForm{}
	return nil
}

func (s *LoginScreen) Form() forms.LoginForm { return s.form }

func (s *LoginScreen) Flash() *Flash { return s.flash }
