package cli

import (
	"context"
	"errors"
	"io"

	"github.com/psptechhub/leadcap/internal/client/forms"
)

// getText, getPassword and selectOption are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getText      = GetTextWithDefault
	getPassword  = GetPassword
	selectOption = SelectOption
)

// Login prompts for credentials and submits them on the login screen.
func (a *App) Login(ctx context.Context) error {
	email, err := getText(a.reader, "Email", a.login.Form().Email, a.out)
	if err != nil {
		return a.inputError(err)
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return a.inputError(err)
	}

	err = a.login.Submit(ctx, forms.LoginForm{Email: email, Password: password})
	a.reportFormError(err)
	return err
}

// Signup prompts for the new account and submits it.
func (a *App) Signup(ctx context.Context) error {
	email, err := getText(a.reader, "Email", a.signup.Form().Email, a.out)
	if err != nil {
		return a.inputError(err)
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return a.inputError(err)
	}
	confirm, err := getPassword(a.reader, "Confirm Password", a.out)
	if err != nil {
		return a.inputError(err)
	}

	err = a.signup.Submit(ctx, forms.SignupForm{Email: email, Password: password, ConfirmPassword: confirm})
	a.reportFormError(err)
	return err
}

// ResetPassword prompts for the account email and requests a reset.
func (a *App) ResetPassword(ctx context.Context) error {
	email, err := getText(a.reader, "Email", a.forgot.Form().Email, a.out)
	if err != nil {
		return a.inputError(err)
	}

	err = a.forgot.Submit(ctx, forms.ForgotPasswordForm{Email: email})
	a.reportFormError(err)
	return err
}

// reportFormError prints inline validation messages. Provider errors are
// shown by the screen's flash on the next render.
func (a *App) reportFormError(err error) {
	var verrs forms.ValidationErrors
	if errors.As(err, &verrs) {
		printValidation(a.out, verrs)
	}
}

func (a *App) inputError(err error) error {
	if !errors.Is(err, io.EOF) {
		printError(a.out, err.Error())
	}
	return err
}

func printValidation(w io.Writer, verrs forms.ValidationErrors) {
	for _, fe := range verrs {
		printError(w, "  "+fe.Message)
	}
}
