package cli

import (
	"context"
	"errors"

	"github.com/psptechhub/leadcap/internal/client/forms"
	"github.com/psptechhub/leadcap/internal/client/services"
)

type Modal int

const (
	ModalNone Modal = iota
	ModalSuccess
	ModalFailure
)

func (m Modal) Message() string {
	switch m {
	case ModalSuccess:
		return forms.MsgLeadSubmitted
	case ModalFailure:
		return forms.MsgLeadFailed
	default:
		return ""
	}
}

// LeadCaptureScreen is the only authenticated screen: it edits and submits
// the lead form and offers logout.
type LeadCaptureScreen struct {
	submitGuard
	leads services.LeadService
	auth  services.AuthService
	form  forms.LeadForm
	errs  forms.ValidationErrors
	modal Modal
}

func NewLeadCaptureScreen(leads services.LeadService, auth services.AuthService) *LeadCaptureScreen {
	return &LeadCaptureScreen{leads: leads, auth: auth}
}

func (s *LeadCaptureScreen) Form() forms.LeadForm { return s.form }

func (s *LeadCaptureScreen) SetForm(f forms.LeadForm) { s.form = f }

// Errors are the inline messages from the last submit attempt.
func (s *LeadCaptureScreen) Errors() forms.ValidationErrors { return s.errs }

func (s *LeadCaptureScreen) Modal() Modal { return s.modal }

func (s *LeadCaptureScreen) DismissModal() { s.modal = ModalNone }

// Submit sends the current form. Invalid input is reported inline and
// nothing is sent. On success the form is cleared; on failure it is kept
// for another attempt.
func (s *LeadCaptureScreen) Submit(ctx context.Context) error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()

	s.errs = nil
	err := s.leads.Submit(ctx, s.form)

	var verrs forms.ValidationErrors
	switch {
	case err == nil:
		s.form = forms.LeadForm{}
		s.modal = ModalSuccess
	case errors.As(err, &verrs):
		s.errs = verrs
	default:
		s.modal = ModalFailure
	}
	return err
}

// Logout signs out and drops the form. It cannot fail.
func (s *LeadCaptureScreen) Logout(ctx context.Context) {
	s.auth.SignOut(ctx)
	s.form = forms.LeadForm{}
	s.errs = nil
	s.modal = ModalNone
}
