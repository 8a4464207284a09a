// Package cli provides the interactive lead-capture terminal client.
//
// It wires configuration, local storage, the identity provider and the
// lead submitter behind a small REPL. The active screen is derived from the
// session state alone:
//
//   - Unauthenticated: Login, Sign Up and Forgot Password, with links
//     between them and "back" navigation.
//   - Authenticated: Lead Capture, with logout.
//
// A splash banner is shown for a fixed duration at startup while the
// persisted session is restored.
package cli
