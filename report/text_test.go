package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/lockscan/model"
)

func TestRenderText_FullShape(t *testing.T) {
	inner := &model.Statement{Kind: model.MonitorRegion, Line: 3, Expr: "other", ResolvedType: "Account", Site: "2"}
	outer := &model.Statement{Kind: model.MonitorRegion, Line: 2, Expr: "this", ResolvedType: "Account", Site: model.GroundSite, Body: []*model.Statement{inner}}
	fn := &model.Function{Name: "swap", ReturnType: "void", Line: 2, Body: []*model.Statement{outer}, Monitor: true,
		Params: []model.Parameter{{Type: "Account", Name: "other"}}}

	g := model.NewLockDependencyGraph()
	g.AddEdge("Account:ground", "Account:2")

	merged := model.NewLockDependencyGraph()
	merged.AddEdge("Account", "Account")

	result := &Result{
		Functions:   []*model.Function{fn},
		Global:      []*model.Statement{model.NewGeneric(1, "class Account {")},
		PerFunction: map[*model.Function]*model.LockDependencyGraph{fn: g},
		Merged:      merged,
		Cycles:      [][]model.LockIdentity{{"Account", "Account"}},
	}

	var buf bytes.Buffer
	RenderText(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "---- Function Declarations ----")
	assert.Contains(t, out, "void swap(Account other) (line 2)")
	assert.Contains(t, out, "synchronized(this) [Account:ground] {")
	assert.Contains(t, out, "synchronized(other) [Account:2] {")
	assert.Contains(t, out, "---- Global Statements ----")
	assert.Contains(t, out, "class Account {")
	assert.Contains(t, out, "---- Lock-dependancy graphs (Local per Function) ----")
	assert.Contains(t, out, "Function swap:")
	assert.Contains(t, out, "Account:ground -> Account:2")
	assert.Contains(t, out, "---- Merged global lock-dependancy graph ----")
	assert.Contains(t, out, "Account -> Account")
	assert.Contains(t, out, "Potential deadlock paths: [[Account, Account]]")
}

func TestRenderText_NoCyclesRendersEmptyBrackets(t *testing.T) {
	result := &Result{
		PerFunction: map[*model.Function]*model.LockDependencyGraph{},
		Merged:      model.NewLockDependencyGraph(),
		Cycles:      nil,
	}

	var buf bytes.Buffer
	RenderText(&buf, result)
	assert.Contains(t, buf.String(), "Potential deadlock paths: []\n")
}

func TestWriteStatement_VariableDeclaration(t *testing.T) {
	var buf bytes.Buffer
	writeStatement(&buf, model.NewVariableDeclaration(1, "Object", "lock"), 1)
	assert.Equal(t, "  Object lock;\n", buf.String())
}

func TestWriteStatement_WaitOperation(t *testing.T) {
	var buf bytes.Buffer
	stmt := &model.Statement{Kind: model.WaitOperation, Line: 1, Expr: "this", ResolvedType: "A", Site: model.GroundSite}
	writeStatement(&buf, stmt, 0)
	assert.Equal(t, "this.wait(); [A:ground]\n", buf.String())
}
