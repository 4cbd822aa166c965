package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/lockscan/model"
)

func monitorStmt(line int, expr, typ, site string, body ...*model.Statement) *model.Statement {
	return &model.Statement{Kind: model.MonitorRegion, Line: line, Expr: expr, ResolvedType: typ, Site: site, Body: body}
}

func waitStmt(line int, expr, typ, site string) *model.Statement {
	return &model.Statement{Kind: model.WaitOperation, Line: line, Expr: expr, ResolvedType: typ, Site: site}
}

// TestBuildFunction_SwapDeadlock checks that a monitor-method wrapping
// synchronized(other), both resolving to the same type and declaration
// site, yields a single self-edge.
func TestBuildFunction_SwapDeadlock(t *testing.T) {
	inner := monitorStmt(3, "other", "Account", "2")
	outer := monitorStmt(2, "this", "Account", "2", inner)
	fn := &model.Function{Name: "swap", Line: 2, Body: []*model.Statement{outer}, Monitor: true}

	g := BuildFunction(fn)
	edges := g.Edges()
	if assert.Len(t, edges, 1) {
		assert.Equal(t, model.LockIdentity("Account:2"), edges[0][0])
		assert.Equal(t, model.LockIdentity("Account:2"), edges[0][1])
	}
}

// TestBuildFunction_NestedDistinctLocks checks a function nesting
// synchronized(b1){synchronized(c1){synchronized(this){}}}.
func TestBuildFunction_NestedDistinctLocks(t *testing.T) {
	innerThis := monitorStmt(5, "this", "A", model.GroundSite)
	midC := monitorStmt(4, "c1", "C", "2", innerThis)
	outerB := monitorStmt(3, "b1", "B", "2", midC)
	fn := &model.Function{Name: "foo", Line: 2, Body: []*model.Statement{outerB}}

	g := BuildFunction(fn)
	edges := g.Edges()
	assert.ElementsMatch(t, [][2]model.LockIdentity{
		{"B:2", "C:2"},
		{"C:2", "A:ground"},
	}, edges)
}

// TestBuildFunction_SequentialRegionsUnderSyntheticOuter checks a
// monitor-method with two sequential, non-nested regions under the
// synthetic outer "this" monitor.
func TestBuildFunction_SequentialRegionsUnderSyntheticOuter(t *testing.T) {
	regionB := monitorStmt(3, "b2", "B", "2")
	regionC := monitorStmt(4, "c2", "C", "2")
	outer := monitorStmt(2, "this", "A", model.GroundSite, regionB, regionC)
	fn := &model.Function{Name: "bar", Line: 2, Body: []*model.Statement{outer}, Monitor: true}

	g := BuildFunction(fn)
	edges := g.Edges()
	assert.ElementsMatch(t, [][2]model.LockIdentity{
		{"A:ground", "B:2"},
		{"A:ground", "C:2"},
	}, edges)
}

// TestBuildFunction_WaitOperation checks that a wait on a different
// object than the held monitor contributes one edge, and the wait target
// is never pushed.
func TestBuildFunction_WaitOperation(t *testing.T) {
	wait := waitStmt(3, "obj", "Queue", "2")
	lock := monitorStmt(2, "lock", "Lock", "2", wait)
	fn := &model.Function{Name: "await", Line: 2, Body: []*model.Statement{lock}}

	g := BuildFunction(fn)
	edges := g.Edges()
	if assert.Len(t, edges, 1) {
		assert.Equal(t, model.LockIdentity("Lock:2"), edges[0][0])
		assert.Equal(t, model.LockIdentity("Queue:2"), edges[0][1])
	}
}

// TestBuildFunction_WaitOnSameMonitorContributesNoEdge covers the boundary
// case where a wait's target equals the top of the lock stack, which
// contributes no edge.
func TestBuildFunction_WaitOnSameMonitorContributesNoEdge(t *testing.T) {
	wait := waitStmt(3, "this", "A", model.GroundSite)
	outer := monitorStmt(2, "this", "A", model.GroundSite, wait)
	fn := &model.Function{Name: "idle", Line: 2, Body: []*model.Statement{outer}, Monitor: true}

	g := BuildFunction(fn)
	assert.Empty(t, g.Edges())
}

// TestBuildFunction_DiningPhilosophersSelfNode checks that N monitors
// sharing one type and declaration site, nested circularly within a
// single function body, resolve to a single self-node; a genuine
// self-edge only appears if the source actually nests the same identity
// inside itself.
func TestBuildFunction_DiningPhilosophersSelfNode(t *testing.T) {
	innermost := monitorStmt(4, "forks[2]", "Fork", "ground")
	middle := monitorStmt(3, "forks[1]", "Fork", "ground", innermost)
	outer := monitorStmt(2, "forks[0]", "Fork", "ground", middle)
	fn := &model.Function{Name: "dine", Line: 2, Body: []*model.Statement{outer}}

	g := BuildFunction(fn)
	edges := g.Edges()
	// both nestings produce the same Fork:ground -> Fork:ground edge, and the
	// graph keeps unique edges only
	if assert.Len(t, edges, 1) {
		for _, e := range edges {
			assert.Equal(t, model.LockIdentity("Fork:ground"), e[0])
			assert.Equal(t, model.LockIdentity("Fork:ground"), e[1])
		}
	}
}

func TestBuildFunction_UnresolvedIdentifierDegradesToRawText(t *testing.T) {
	// an unresolved monitor expression (e.g. a method call) leaves
	// ResolvedType unset; Identity() falls back to the raw expression.
	inner := &model.Statement{Kind: model.MonitorRegion, Line: 4, Expr: "getLock()"}
	outer := monitorStmt(2, "this", "A", model.GroundSite, inner)
	fn := &model.Function{Name: "m", Line: 2, Body: []*model.Statement{outer}, Monitor: true}

	g := BuildFunction(fn)
	edges := g.Edges()
	if assert.Len(t, edges, 1) {
		assert.Equal(t, model.LockIdentity("getLock()"), edges[0][1])
	}
}
