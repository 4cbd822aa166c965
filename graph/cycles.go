package graph

import "github.com/viant/lockscan/model"

// FindCycles runs a DFS over the merged graph and returns a best-effort
// dump of cycles, not a canonical enumeration of simple cycles. For each
// start node, in graph node order: if the current node is already on the
// current path, a cycle has closed — record the path extended with this
// closing node (the cycle vertex list repeats the closing node at the
// end) and stop descending from there; otherwise, if the node was already
// fully explored from an earlier start, skip it; otherwise push it onto
// the path and recurse into its neighbours in graph order before popping
// it. The visited-forever set is shared across start nodes, so cycles
// through an already-finished DAG-like subregion are not re-discovered.
// Every node is expanded at most once, so each edge is followed once and a
// given cycle is recorded at most once; a cycle whose closing edge is only
// reachable through an already-finished node is not reported (for edges
// A->B, B->C, C->A, A->C only [A, B, C, A] is recorded, not [A, C, A]).
func FindCycles(g *model.LockDependencyGraph) [][]model.LockIdentity {
	var cycles [][]model.LockIdentity
	visitedForever := make(map[model.LockIdentity]bool)
	onPath := make(map[model.LockIdentity]bool)

	var visit func(node model.LockIdentity, path []model.LockIdentity)
	visit = func(node model.LockIdentity, path []model.LockIdentity) {
		if onPath[node] {
			closed := append(append([]model.LockIdentity(nil), path...), node)
			cycles = append(cycles, closed)
			return
		}
		if visitedForever[node] {
			return
		}
		path = append(path, node)
		onPath[node] = true
		for _, next := range g.Neighbours(node) {
			visit(next, path)
		}
		onPath[node] = false
		visitedForever[node] = true
	}

	for _, node := range g.Nodes() {
		visit(node, nil)
	}
	return cycles
}
