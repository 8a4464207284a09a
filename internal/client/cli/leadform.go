package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/psptechhub/leadcap/internal/client/forms"
)

// FillLead walks through every field of the lead form. Enter keeps the
// current value. Nothing is changed if input is aborted.
func (a *App) FillLead(ctx context.Context) error {
	f := a.lead.Form()

	steps := []func() error{
		a.textStep("Name", &f.Name),
		a.textStep("Company Name", &f.CompanyName),
		a.selectStep("Country", forms.Countries, &f.Country),
		a.textStep("Email", &f.Email),
		a.textStep("Mobile Number", &f.MobileNumber),
		a.selectStep("Application", forms.Applications, &f.Application),
		func() error {
			if f.Application != forms.ApplicationOther {
				f.ApplicationValue = ""
				return nil
			}
			return a.textStep("Other Application", &f.ApplicationValue)()
		},
		a.textStep("Business Case", &f.BusinessCase),
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			return a.inputError(err)
		}
	}

	a.lead.SetForm(f)
	return nil
}

func (a *App) textStep(label string, dst *string) func() error {
	return func() error {
		v, err := getText(a.reader, label, *dst, a.out)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func (a *App) selectStep(label string, options []string, dst *string) func() error {
	return func() error {
		v, err := selectOption(a.reader, label, options, *dst, a.out)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// SubmitLead validates and sends the form. The outcome modal is shown on
// the next render.
func (a *App) SubmitLead(ctx context.Context) error {
	err := a.lead.Submit(ctx)

	var verrs forms.ValidationErrors
	switch {
	case err == nil:
		a.log.Info(ctx, "lead captured")
	case errors.As(err, &verrs):
		printValidation(a.out, verrs)
	case errors.Is(err, ErrSubmitInProgress):
		printMuted(a.out, "Submitting...")
	default:
		a.log.Warn(ctx, "lead not captured", "error", err)
	}
	return err
}

// ShowLead prints the form with any inline messages.
func (a *App) ShowLead() {
	f := a.lead.Form()
	errs := a.lead.Errors()

	rows := []struct {
		label, field, value string
	}{
		{"Name", "name", f.Name},
		{"Company Name", "companyName", f.CompanyName},
		{"Country", "country", f.Country},
		{"Email", "email", f.Email},
		{"Mobile Number", "mobileNumber", f.MobileNumber},
		{"Application", "application", f.Application},
		{"Other Application", "applicationValue", f.ApplicationValue},
		{"Business Case", "businessCase", f.BusinessCase},
	}

	for _, r := range rows {
		if r.field == "applicationValue" && f.Application != forms.ApplicationOther {
			continue
		}
		fmt.Fprintf(a.out, "%-18s %s\n", r.label+":", r.value)
		if msg := errs.Get(r.field); msg != "" {
			printError(a.out, "  "+msg)
		}
	}
}

func (a *App) ClearLead() {
	a.lead.SetForm(forms.LeadForm{})
}

func (a *App) Logout(ctx context.Context) {
	a.lead.Logout(ctx)
}
