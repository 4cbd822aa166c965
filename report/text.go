// Package report renders analysis results as a fixed-shape text report,
// and offers an additive YAML export of the lock-dependency graphs.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/viant/lockscan/model"
)

// Result bundles everything a completed analysis run produced: the
// accumulated functions and global statements across every input file, the
// per-function lock graphs, the merged global graph, and the enumerated
// cycles.
type Result struct {
	Functions   []*model.Function
	Global      []*model.Statement
	PerFunction map[*model.Function]*model.LockDependencyGraph
	Merged      *model.LockDependencyGraph
	Cycles      [][]model.LockIdentity
	// FileHashes is additive metadata: a content fingerprint per input
	// path, keyed by the path as given to Analyzer.AnalyzeFiles. It plays
	// no part in the mandated text output.
	FileHashes map[string]uint64
}

// RenderText writes the fixed-shape text report to w, in order: function
// declarations, global statements, per-function lock graphs, the merged
// graph, and the potential deadlock paths line.
func RenderText(w io.Writer, result *Result) {
	fmt.Fprintln(w, "---- Function Declarations ----")
	for _, fn := range result.Functions {
		writeFunction(w, fn)
	}

	fmt.Fprintln(w, "---- Global Statements ----")
	for _, stmt := range result.Global {
		writeStatement(w, stmt, 0)
	}

	fmt.Fprintln(w, "---- Lock-dependancy graphs (Local per Function) ----")
	for _, fn := range result.Functions {
		fmt.Fprintf(w, "Function %s:\n", fn.Name)
		fmt.Fprintln(w, "Lock Order Graph:")
		writeEdges(w, result.PerFunction[fn])
	}

	fmt.Fprintln(w, "---- Merged global lock-dependancy graph ----")
	writeEdges(w, result.Merged)

	fmt.Fprintf(w, "Potential deadlock paths: %s\n", formatCycles(result.Cycles))
}

func writeEdges(w io.Writer, g *model.LockDependencyGraph) {
	if g == nil {
		return
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "  %s -> %s\n", e[0], e[1])
	}
}

func writeFunction(w io.Writer, fn *model.Function) {
	fmt.Fprintf(w, "%s %s\n", fn.Signature(), declSuffix(fn.Line))
	for _, stmt := range fn.Body {
		writeStatement(w, stmt, 1)
	}
}

func declSuffix(line int) string {
	return fmt.Sprintf("(line %d)", line)
}

func writeStatement(w io.Writer, stmt *model.Statement, depth int) {
	indent := strings.Repeat("  ", depth)
	switch stmt.Kind {
	case model.Generic:
		fmt.Fprintf(w, "%s%s\n", indent, stmt.Text)
	case model.VariableDeclaration:
		fmt.Fprintf(w, "%s%s %s;\n", indent, stmt.DeclaredType, stmt.Name)
	case model.MonitorRegion:
		fmt.Fprintf(w, "%ssynchronized(%s) [%s] {\n", indent, stmt.Expr, stmt.Identity())
		for _, child := range stmt.Body {
			writeStatement(w, child, depth+1)
		}
		fmt.Fprintf(w, "%s}\n", indent)
	case model.WaitOperation:
		fmt.Fprintf(w, "%s%s.wait(); [%s]\n", indent, stmt.Expr, stmt.Identity())
	}
}

// formatCycles renders the cycle list as a bracketed list of bracketed
// vertex lists, e.g. "[[A, B, A], [C, C]]".
func formatCycles(cycles [][]model.LockIdentity) string {
	parts := make([]string, 0, len(cycles))
	for _, cycle := range cycles {
		vertices := make([]string, 0, len(cycle))
		for _, v := range cycle {
			vertices = append(vertices, string(v.Type()))
		}
		parts = append(parts, "["+strings.Join(vertices, ", ")+"]")
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
