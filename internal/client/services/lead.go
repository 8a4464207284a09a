package services

import (
	"context"

	"github.com/psptechhub/leadcap/internal/client/forms"
	"github.com/psptechhub/leadcap/internal/client/leads"
)

// LeadService validates and submits lead-capture forms.
type LeadService interface {
	Submit(ctx context.Context, form forms.LeadForm) error
}

type leadService struct {
	submitter leads.Submitter
}

func NewLeadService(submitter leads.Submitter) LeadService {
	return &leadService{submitter: submitter}
}

// Submit returns forms.ValidationErrors without contacting the endpoint
// when the form is invalid.
func (s *leadService) Submit(ctx context.Context, form forms.LeadForm) error {
	if err := forms.Validate(form); err != nil {
		return err
	}
	return s.submitter.Submit(ctx, form.Lead())
}
