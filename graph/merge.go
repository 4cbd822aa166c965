package graph

import "github.com/viant/lockscan/model"

// Merge builds every function's per-function graph and unions a
// canonicalised copy of each edge into one merged graph: for every edge
// u -> v, the merged graph gets canon(u) -> canon(v), where canon strips
// the declaration-site suffix, collapsing all instances of a given
// monitor-bearing type to one node. It also returns the unmerged
// per-function graphs, keyed by function, for the per-function section of
// the report.
func Merge(functions []*model.Function) (merged *model.LockDependencyGraph, perFunction map[*model.Function]*model.LockDependencyGraph) {
	merged = model.NewLockDependencyGraph()
	perFunction = make(map[*model.Function]*model.LockDependencyGraph, len(functions))

	for _, fn := range functions {
		fg := BuildFunction(fn)
		perFunction[fn] = fg
		for _, e := range fg.Edges() {
			merged.AddEdge(e[0].Canonical(), e[1].Canonical())
		}
	}
	return merged, perFunction
}
