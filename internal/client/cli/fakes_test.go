package cli

import (
	"context"
	"sync"

	"github.com/psptechhub/leadcap/internal/client/forms"
	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/psptechhub/leadcap/internal/client/leads"
	"github.com/psptechhub/leadcap/internal/client/session"
)

// fakeAuth implements services.AuthService against an in-memory session.
type fakeAuth struct {
	state *session.Store

	SignInErr error
	SignUpErr error
	ResetErr  error
	// Block, when set, holds SignIn until closed.
	Block   chan struct{}
	Entered chan struct{}

	mu    sync.Mutex
	calls []string
}

func newFakeAuth(state *session.Store) *fakeAuth {
	return &fakeAuth{state: state}
}

func (f *fakeAuth) record(c string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeAuth) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAuth) SignIn(ctx context.Context, email, password string) error {
	f.record("signin:" + email)
	if f.Entered != nil {
		f.Entered <- struct{}{}
	}
	if f.Block != nil {
		<-f.Block
	}
	if f.SignInErr != nil {
		return f.SignInErr
	}
	f.state.SignIn(session.Session{Email: email})
	return nil
}

func (f *fakeAuth) SignUp(ctx context.Context, email, password string) error {
	f.record("signup:" + email)
	if f.SignUpErr != nil {
		return f.SignUpErr
	}
	f.state.SignIn(session.Session{Email: email})
	return nil
}

func (f *fakeAuth) SendPasswordReset(ctx context.Context, email string) error {
	f.record("reset:" + email)
	return f.ResetErr
}

func (f *fakeAuth) SignOut(ctx context.Context) {
	f.record("signout")
	f.state.SignOut()
}

func (f *fakeAuth) Restore(ctx context.Context) session.Session {
	f.record("restore")
	return f.state.Current()
}

// fakeLeads implements services.LeadService with real validation.
type fakeLeads struct {
	Err  error
	Sent []leads.Lead
}

func (f *fakeLeads) Submit(ctx context.Context, form forms.LeadForm) error {
	if err := forms.Validate(form); err != nil {
		return err
	}
	f.Sent = append(f.Sent, form.Lead())
	return f.Err
}

func authErr(code identity.Code) error {
	return &identity.AuthError{Code: code}
}

func validLeadForm() forms.LeadForm {
	return forms.LeadForm{
		Name:         "Ann",
		CompanyName:  "Acme",
		Country:      "India",
		Email:        "ann@acme.io",
		MobileNumber: "9876543210",
		Application:  "CWC",
		BusinessCase: "Automate",
	}
}
