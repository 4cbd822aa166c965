package parser

import (
	"strings"

	"github.com/viant/lockscan/model"
	"github.com/viant/lockscan/resolver"
)

// parseBlock recurses over the line array starting at i, recognising the
// three nested-block-level line shapes in priority order — monitor-region
// header, wait operation, variable declaration — and treating every other
// non-empty, non-"}" line as an opaque Generic statement.
// It terminates at the first line whose trimmed content is exactly "}",
// consuming that line; reaching EOF first returns the statements collected
// so far (a malformed input does not abort the run).
func parseBlock(lines []string, i int, scope *model.Scope, class string) ([]*model.Statement, int) {
	var stmts []*model.Statement
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "":
			i++
		case trimmed == "}":
			return stmts, i + 1
		default:
			var stmt *model.Statement
			stmt, i = parseLine(lines, i, trimmed, scope, class)
			stmts = append(stmts, stmt)
		}
	}
	return stmts, i
}

// parseLine matches one trimmed line against the monitor-region, wait and
// variable-declaration patterns (in that priority order) and falls back to
// a Generic statement. Returns the emitted statement and the index of the
// next unconsumed line.
func parseLine(lines []string, i int, trimmed string, scope *model.Scope, class string) (*model.Statement, int) {
	if m := monitorHeaderPattern.FindStringSubmatch(trimmed); m != nil {
		line := i + 1
		body, next := parseBlock(lines, i+1, scope.Child(), class)
		region := model.NewMonitorRegion(line, m[1], body)
		resolver.ResolveMonitorRegion(class, region, scope)
		return region, next
	}
	if m := waitPattern.FindStringSubmatch(trimmed); m != nil {
		target := m[1]
		if target == "" {
			target = resolver.This
		}
		wait := model.NewWaitOperation(i+1, target)
		resolver.ResolveWaitOperation(class, wait, scope)
		return wait, i + 1
	}
	if m := varDeclPattern.FindStringSubmatch(trimmed); m != nil {
		decl := model.NewVariableDeclaration(i+1, m[1], m[2])
		scope.Declare(m[2], m[1], i+1)
		return decl, i + 1
	}
	return model.NewGeneric(i+1, trimmed), i + 1
}
