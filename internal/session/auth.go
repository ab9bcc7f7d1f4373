package session

import "sync"

// AuthGate is the authentication collaborator. The engine never performs
// auth itself; it only asks whether the user is signed in and, when a
// completed result needs an account, hands control to the sign-in flow.
type AuthGate interface {
	IsAuthenticated() bool

	// RequireAuth starts the sign-in flow, returning the user to
	// returnPath afterwards. The engine stashes pending state before
	// calling this.
	RequireAuth(returnPath string)
}

// StaticAuthGate is a fixed-answer AuthGate for tests and for contexts
// where auth is known up front. It records RequireAuth calls.
type StaticAuthGate struct {
	Authed bool

	mu        sync.Mutex
	redirects []string
}

func (g *StaticAuthGate) IsAuthenticated() bool { return g.Authed }

func (g *StaticAuthGate) RequireAuth(returnPath string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.redirects = append(g.redirects, returnPath)
}

// Redirects returns the return paths passed to RequireAuth so far.
func (g *StaticAuthGate) Redirects() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.redirects...)
}
