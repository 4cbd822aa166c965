// Package graph builds per-function lock-dependency graphs, merges them
// into a global graph, and enumerates cycles in the merged graph.
package graph

import "github.com/viant/lockscan/model"

// BuildFunction walks fn's statement tree in depth-first, source order,
// carrying a lock stack whose top is the most recently acquired lock
// identity, and returns the resulting per-function graph.
func BuildFunction(fn *model.Function) *model.LockDependencyGraph {
	g := model.NewLockDependencyGraph()
	walk(fn.Body, nil, g)
	return g
}

func walk(stmts []*model.Statement, stack []model.LockIdentity, g *model.LockDependencyGraph) {
	for _, stmt := range stmts {
		switch stmt.Kind {
		case model.MonitorRegion:
			id := stmt.Identity()
			if len(stack) > 0 {
				g.AddEdge(stack[len(stack)-1], id)
			}
			walk(stmt.Body, push(stack, id), g)
		case model.WaitOperation:
			id := stmt.Identity()
			if len(stack) > 0 && stack[len(stack)-1] != id {
				g.AddEdge(stack[len(stack)-1], id)
			}
			// wait releases and later re-acquires its own monitor: it is
			// never pushed, it contributes no nested holding.
		default:
			// Generic and VariableDeclaration statements carry no lock
			// semantics and are ignored by the builder.
		}
	}
}

// push returns a new stack with id on top, never aliasing stack's backing
// array so sibling branches of the statement tree cannot observe each
// other's pushes.
func push(stack []model.LockIdentity, id model.LockIdentity) []model.LockIdentity {
	next := make([]model.LockIdentity, len(stack)+1)
	copy(next, stack)
	next[len(stack)] = id
	return next
}
