package forms

import "github.com/psptechhub/leadcap/internal/client/leads"

// Lead converts a validated form into the submission record.
func (f LeadForm) Lead() leads.Lead {
	return leads.Lead{
		Name:             f.Name,
		CompanyName:      f.CompanyName,
		Country:          f.Country,
		Email:            f.Email,
		MobileNumber:     f.MobileNumber,
		BusinessCase:     f.BusinessCase,
		Application:      f.Application,
		ApplicationValue: f.ApplicationValue,
	}
}
