package cli

import "slices"

// Stack is the navigation history of the unauthenticated screens. It is
// never empty: the root route cannot be popped.
type Stack struct {
	root   Route
	routes []Route
}

func NewStack(root Route) *Stack {
	return &Stack{root: root, routes: []Route{root}}
}

func (s *Stack) Top() Route {
	return s.routes[len(s.routes)-1]
}

func (s *Stack) Len() int {
	return len(s.routes)
}

// Push moves to r. If r is already on the stack, everything above it is
// dropped instead of pushing a duplicate.
func (s *Stack) Push(r Route) {
	if i := slices.Index(s.routes, r); i >= 0 {
		s.routes = s.routes[:i+1]
		return
	}
	s.routes = append(s.routes, r)
}

// Pop removes the top route; it reports false at the root.
func (s *Stack) Pop() bool {
	if len(s.routes) == 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

func (s *Stack) Reset() {
	s.routes = []Route{s.root}
}
