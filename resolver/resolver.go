// Package resolver assigns a stable lock identity to each monitor-region
// header and wait-operation expression, based on the declared type and
// declaration site of the referenced variable.
package resolver

import (
	"strconv"

	"github.com/viant/lockscan/model"
)

// This is the bare `this` monitor target.
const This = "this"

// Resolve annotates expr's resolved type and declaration-site tag using the
// scope visible at the call site. It never fails: an expression that is
// not "this" and not a bound identifier is left unresolved (empty type and
// site), and the caller falls back to the raw expression text as a
// degraded identity.
func Resolve(ambientClass string, expr string, scope *model.Scope) (resolvedType, site string) {
	if expr == This {
		return ambientClass, model.GroundSite
	}
	if b, ok := scope.Lookup(expr); ok {
		return b.Type, siteTag(b.Line)
	}
	return "", ""
}

// siteTag renders a 1-origin declaration line as its text form, as used in
// a LockIdentity's SITE component.
func siteTag(line int) string {
	return strconv.Itoa(line)
}

// ResolveMonitorRegion fills in the ResolvedType/Site of a MonitorRegion
// statement in place, using the scope visible at the region's declaration
// site.
func ResolveMonitorRegion(ambientClass string, stmt *model.Statement, scope *model.Scope) {
	stmt.ResolvedType, stmt.Site = Resolve(ambientClass, stmt.Expr, scope)
}

// ResolveWaitOperation fills in the ResolvedType/Site of a WaitOperation
// statement in place, using the scope visible at the call site.
func ResolveWaitOperation(ambientClass string, stmt *model.Statement, scope *model.Scope) {
	stmt.ResolvedType, stmt.Site = Resolve(ambientClass, stmt.Expr, scope)
}

// SyntheticOuterMonitor builds the synthetic outer MonitorRegion a
// monitor-method's body is wrapped in: expression "this", type the ambient
// class, site ground.
func SyntheticOuterMonitor(ambientClass string, line int, body []*model.Statement) *model.Statement {
	stmt := model.NewMonitorRegion(line, This, body)
	stmt.ResolvedType = ambientClass
	stmt.Site = model.GroundSite
	return stmt
}
