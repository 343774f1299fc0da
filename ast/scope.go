package ast

import "slices"

// Scope is the capability shared by the node variants that can host local
// declarations: Program, FunctionLiteral, ArrowFunctionLiteral and
// CatchClause. The environment is storage only; deciding which scope
// declares a given name is the resolver's job, and names it never assigns
// default to the enclosing Program (see Name.ResolvedScope).
type Scope interface {
	Node
	// Declare records name as declared directly in this scope. Entries
	// are added, not removed.
	Declare(name string)
	// Declares reports whether name is declared directly in this scope.
	Declares(name string) bool
	// DeclaredNames returns the declared names in sorted order.
	DeclaredNames() []string
}

// Environment is the declared-name set carried by every scope node.
type Environment map[string]struct{}

// ScopeBase is embedded by scope nodes and implements Scope's
// environment surface.
type ScopeBase struct {
	Env Environment
}

func (s *ScopeBase) Declare(name string) {
	if s.Env == nil {
		s.Env = make(Environment)
	}
	s.Env[name] = struct{}{}
}

func (s *ScopeBase) Declares(name string) bool {
	_, ok := s.Env[name]
	return ok
}

func (s *ScopeBase) DeclaredNames() []string {
	names := make([]string, 0, len(s.Env))
	for name := range s.Env {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
