package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/psptechhub/leadcap/internal/client/config"
	"github.com/psptechhub/leadcap/internal/client/identity"
	"github.com/psptechhub/leadcap/internal/client/leads"
	"github.com/psptechhub/leadcap/internal/client/repositories/sessionstore"
	"github.com/psptechhub/leadcap/internal/client/services"
	"github.com/psptechhub/leadcap/internal/client/session"
	"github.com/psptechhub/leadcap/internal/client/storage"
	"github.com/psptechhub/leadcap/internal/common"
	"github.com/psptechhub/leadcap/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger
	db     *sql.DB
	state  *session.Store
	auth   services.AuthService
	router *Router
	reader *bufio.Reader
	out    io.Writer

	login  *LoginScreen
	signup *SignupScreen
	forgot *ForgotPasswordScreen
	lead   *LeadCaptureScreen

	shown Route
}

// NewApp opens the local database and wires the identity provider, lead
// submitter and screens.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := sessionstore.NewSQLiteRepository(db)

	provider, err := newProvider(ctx, c, db, store, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	state := session.NewStore()
	auth := services.NewAuthService(provider, store, state, log)
	leadSvc := services.NewLeadService(leads.NewHTTPSubmitter(c.LeadEndpoint, c.HTTPTimeout, log))

	a := newApp(c, log, auth, leadSvc, state, in, out)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, auth services.AuthService, leadSvc services.LeadService, state *session.Store, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		log:    log,
		state:  state,
		auth:   auth,
		router: NewRouter(state),
		reader: bufio.NewReader(in),
		out:    out,
	}

	a.login = NewLoginScreen(auth, NewFlash(c.ErrorDisplayDuration))
	a.signup = NewSignupScreen(auth, NewFlash(c.ErrorDisplayDuration))
	a.forgot = NewForgotPasswordScreen(auth, NewFlash(c.ErrorDisplayDuration),
		c.ResetSentDelay, c.ResetSentDisplay,
		func(msg string) { printModal(a.out, msg, true) },
		func() {
			if err := a.router.Navigate(RouteLogin); err != nil {
				a.log.Warn(context.Background(), "navigation after reset failed", "error", err)
			}
		},
	)
	a.lead = NewLeadCaptureScreen(leadSvc, auth)
	return a
}

func newProvider(ctx context.Context, c *config.Config, db *sql.DB, store sessionstore.Repository, log logging.Logger) (identity.Provider, error) {
	switch c.Provider {
	case config.ProviderFirebase:
		return identity.NewFirebaseClient(c.IdentityEndpoint, c.FirebaseAPIKey, c.HTTPTimeout, log), nil
	case config.ProviderLocal:
		secret, err := localTokenSecret(ctx, c, store)
		if err != nil {
			return nil, err
		}
		return identity.NewLocalProvider(db, []byte(secret), c.LocalTokenTTL, log), nil
	default:
		return nil, fmt.Errorf("unknown identity provider %q", c.Provider)
	}
}

// localTokenSecret returns the configured secret, or the one generated on
// first run and kept in the session store.
func localTokenSecret(ctx context.Context, c *config.Config, store sessionstore.Repository) (string, error) {
	if c.LocalTokenSecret != "" {
		return c.LocalTokenSecret, nil
	}

	secret, ok, err := store.Get(ctx, sessionstore.KeyLocalTokenSecret)
	if err != nil {
		return "", err
	}
	if ok && secret != "" {
		return secret, nil
	}

	secret, err = common.MakeRandHexString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}
	if err := store.Set(ctx, sessionstore.KeyLocalTokenSecret, secret); err != nil {
		return "", err
	}
	return secret, nil
}

// Run shows the splash screen, then serves commands until exit, EOF or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	unsubscribe := a.watchSession(ctx)
	defer unsubscribe()

	restored, err := NewSplashGate(a.config.SplashDuration, a.auth.Restore, a.out).Run(ctx)
	if err != nil {
		<-restored
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	runREPL(ctx, a, a.reader, a.out)
	a.teardown(a.shown)
	<-restored
	return nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) watchSession(ctx context.Context) func() {
	ch, cancel := a.state.Subscribe()
	go func() {
		for sess := range ch {
			a.log.Info(ctx, "session changed", "state", sess.State.String())
		}
	}()
	return cancel
}

func (a *App) Route() Route {
	return a.router.Current()
}

// Render prints the screen header when the route changed, then any
// pending message.
func (a *App) Render(w io.Writer) {
	route := a.router.Current()
	if route != a.shown {
		a.teardown(a.shown)
		a.shown = route
		fmt.Fprintln(w)
		printTitle(w, screenTitles[route])
		printMuted(w, helpFor(route))
	}

	switch route {
	case RouteLogin:
		renderFlash(w, a.login.Flash())
	case RouteSignup:
		renderFlash(w, a.signup.Flash())
	case RouteForgotPassword:
		renderFlash(w, a.forgot.Flash())
	case RouteLeadCapture:
		if m := a.lead.Modal(); m != ModalNone {
			printModal(w, m.Message(), m == ModalSuccess)
			a.lead.DismissModal()
		}
	}
}

var screenTitles = map[Route]string{
	RouteLogin:          "Login",
	RouteSignup:         "Sign Up",
	RouteForgotPassword: "Forgot Password",
	RouteLeadCapture:    "Lead Capture",
}

func renderFlash(w io.Writer, f *Flash) {
	if msg := f.Message(); msg != "" {
		printError(w, msg)
	}
}

// teardown cancels the timers of the screen being left.
func (a *App) teardown(r Route) {
	switch r {
	case RouteLogin:
		a.login.Flash().Stop()
	case RouteSignup:
		a.signup.Flash().Stop()
	case RouteForgotPassword:
		a.forgot.Flash().Stop()
	case RouteLeadCapture:
		a.lead.DismissModal()
	}
}

func (a *App) Navigate(to Route) error {
	if err := a.router.Navigate(to); err != nil {
		printError(a.out, err.Error())
		return err
	}
	return nil
}

func (a *App) Back() bool {
	if !a.router.Back() {
		printMuted(a.out, "Nothing to go back to.")
		return false
	}
	return true
}
