package cli

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/psptechhub/leadcap/internal/client/session"
)

type Route string

const (
	RouteLogin          Route = "login"
	RouteSignup         Route = "signup"
	RouteForgotPassword Route = "forgot-password"
	RouteLeadCapture    Route = "lead-capture"
)

// ErrNoLink is returned when the current screen has no link to the target.
var ErrNoLink = errors.New("no link to route")

// links lists the routes reachable from each unauthenticated screen.
var links = map[Route][]Route{
	RouteLogin:          {RouteSignup, RouteForgotPassword},
	RouteSignup:         {RouteLogin},
	RouteForgotPassword: {RouteSignup, RouteLogin},
}

// Router picks the active screen from the session state alone. When the
// state flips, the unauthenticated stack is reset so no history survives a
// sign-in or sign-out.
type Router struct {
	state *session.Store

	mu    sync.Mutex
	stack *Stack
	epoch uint64
}

func NewRouter(state *session.Store) *Router {
	return &Router{
		state: state,
		stack: NewStack(RouteLogin),
		epoch: state.Epoch(),
	}
}

// sync resets the stack if the state flipped since the last call and
// reports whether the session is authenticated. mu must be held.
func (r *Router) sync() bool {
	epoch := r.state.Epoch()
	if epoch != r.epoch {
		r.epoch = epoch
		r.stack.Reset()
	}
	return r.state.IsAuthenticated()
}

func (r *Router) Current() Route {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sync() {
		return RouteLeadCapture
	}
	return r.stack.Top()
}

// Navigate follows a link from the current unauthenticated screen.
func (r *Router) Navigate(to Route) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sync() {
		return fmt.Errorf("%w: %s while authenticated", ErrNoLink, to)
	}
	from := r.stack.Top()
	if !slices.Contains(links[from], to) {
		return fmt.Errorf("%w: %s -> %s", ErrNoLink, from, to)
	}
	r.stack.Push(to)
	return nil
}

// Back pops the unauthenticated stack. It reports false when there is
// nothing to go back to.
func (r *Router) Back() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sync() {
		return false
	}
	return r.stack.Pop()
}

// Depth is the size of the unauthenticated stack.
func (r *Router) Depth() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sync()
	return r.stack.Len()
}
