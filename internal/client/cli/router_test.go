package cli

import (
	"testing"

	"github.com/psptechhub/leadcap/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack(RouteLogin)
	assert.False(t, s.Pop())
	assert.Equal(t, RouteLogin, s.Top())

	s.Push(RouteForgotPassword)
	s.Push(RouteSignup)
	assert.Equal(t, 3, s.Len())

	s.Push(RouteLogin)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, RouteLogin, s.Top())

	s.Push(RouteSignup)
	s.Reset()
	assert.Equal(t, RouteLogin, s.Top())
	assert.Equal(t, 1, s.Len())
}

func TestRouter_FollowsAuthState(t *testing.T) {
	state := session.NewStore()
	r := NewRouter(state)
	assert.Equal(t, RouteLogin, r.Current())

	state.SetAuthenticated(true)
	assert.Equal(t, RouteLeadCapture, r.Current())

	state.SetAuthenticated(false)
	assert.Equal(t, RouteLogin, r.Current())
}

func TestRouter_StartsAuthenticated(t *testing.T) {
	state := session.NewStore()
	state.SetAuthenticated(true)
	r := NewRouter(state)
	assert.Equal(t, RouteLeadCapture, r.Current())
}

func TestRouter_Links(t *testing.T) {
	r := NewRouter(session.NewStore())

	require.NoError(t, r.Navigate(RouteForgotPassword))
	assert.Equal(t, RouteForgotPassword, r.Current())

	require.NoError(t, r.Navigate(RouteSignup))
	assert.Equal(t, RouteSignup, r.Current())
	assert.Equal(t, 3, r.Depth())

	require.ErrorIs(t, r.Navigate(RouteForgotPassword), ErrNoLink)
	require.ErrorIs(t, r.Navigate(RouteLeadCapture), ErrNoLink)

	require.NoError(t, r.Navigate(RouteLogin))
	assert.Equal(t, RouteLogin, r.Current())
	assert.Equal(t, 1, r.Depth())
}

func TestRouter_Back(t *testing.T) {
	r := NewRouter(session.NewStore())
	assert.False(t, r.Back())

	require.NoError(t, r.Navigate(RouteSignup))
	assert.True(t, r.Back())
	assert.Equal(t, RouteLogin, r.Current())
}

func TestRouter_FlipDiscardsStack(t *testing.T) {
	state := session.NewStore()
	r := NewRouter(state)
	require.NoError(t, r.Navigate(RouteSignup))
	assert.Equal(t, 2, r.Depth())

	state.SetAuthenticated(true)
	require.ErrorIs(t, r.Navigate(RouteLogin), ErrNoLink)
	assert.False(t, r.Back())

	state.SetAuthenticated(false)
	assert.Equal(t, RouteLogin, r.Current())
	assert.Equal(t, 1, r.Depth())
}

func TestRouter_MissedRoundTripStillResets(t *testing.T) {
	state := session.NewStore()
	r := NewRouter(state)
	require.NoError(t, r.Navigate(RouteSignup))

	state.SetAuthenticated(true)
	state.SetAuthenticated(false)

	assert.Equal(t, RouteLogin, r.Current())
	assert.Equal(t, 1, r.Depth())
}
