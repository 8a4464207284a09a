package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. The real App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	Route() Route
	Render(w io.Writer)
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Navigate(to Route) error
	Back() bool
	FillLead(ctx context.Context) error
	SubmitLead(ctx context.Context) error
	ShowLead()
	ClearLead()
	Logout(ctx context.Context)
}

// routeCommands lists the commands of each screen, in help order.
var routeCommands = map[Route][]string{
	RouteLogin:          {"login", "signup", "forgot"},
	RouteSignup:         {"signup", "login", "back"},
	RouteForgotPassword: {"reset", "signup", "login", "back"},
	RouteLeadCapture:    {"fill", "show", "submit", "clear", "logout"},
}

func helpFor(r Route) string {
	cmds := append(append([]string{}, routeCommands[r]...), "help", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// runREPL reads commands from reader until EOF, "exit" or ctx is done and
// dispatches them according to the current route. Handler errors are
// reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		route := a.Route()
		a.Render(w)
		fmt.Fprintf(w, "leadcap (%s)> ", route)

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		// the session may have flipped while waiting for input
		if current := a.Route(); current != route {
			if !isGlobal(parts[0]) {
				fmt.Fprintf(w, "Screen changed to %s, %q was not run.\n", current, parts[0])
				continue
			}
			route = current
		}

		if quit := dispatch(ctx, a, route, parts[0], w); quit {
			return
		}
	}
}

func isGlobal(cmd string) bool {
	switch cmd {
	case "help", "exit", "quit":
		return true
	}
	return false
}

func dispatch(ctx context.Context, a execIface, route Route, cmd string, w io.Writer) (quit bool) {
	switch cmd {
	case "help":
		fmt.Fprintln(w, helpFor(route))
		return false
	case "exit", "quit":
		fmt.Fprintln(w, "Bye!")
		return true
	}

	switch route {
	case RouteLogin:
		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Navigate(RouteSignup)
		case "forgot":
			_ = a.Navigate(RouteForgotPassword)
		default:
			unknown(w, cmd)
		}

	case RouteSignup:
		switch cmd {
		case "signup":
			_ = a.Signup(ctx)
		case "login":
			_ = a.Navigate(RouteLogin)
		case "back":
			a.Back()
		default:
			unknown(w, cmd)
		}

	case RouteForgotPassword:
		switch cmd {
		case "reset":
			_ = a.ResetPassword(ctx)
		case "signup":
			_ = a.Navigate(RouteSignup)
		case "login":
			_ = a.Navigate(RouteLogin)
		case "back":
			a.Back()
		default:
			unknown(w, cmd)
		}

	case RouteLeadCapture:
		switch cmd {
		case "fill":
			_ = a.FillLead(ctx)
		case "show":
			a.ShowLead()
		case "submit":
			_ = a.SubmitLead(ctx)
		case "clear":
			a.ClearLead()
		case "logout":
			a.Logout(ctx)
		default:
			unknown(w, cmd)
		}
	}
	return false
}

func unknown(w io.Writer, cmd string) {
	fmt.Fprintln(w, "Unknown command:", cmd, "(type 'help' for commands)")
}
