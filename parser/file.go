package parser

import (
	"strings"

	"github.com/viant/lockscan/model"
	"github.com/viant/lockscan/resolver"
)

// hasModifier reports whether name appears among the whitespace-separated
// modifier keywords the function-header pattern accepted.
func hasModifier(modifiers, name string) bool {
	for _, tok := range strings.Fields(modifiers) {
		if tok == name {
			return true
		}
	}
	return false
}

// Result is everything a single file parse produces: the functions it
// declared and the statements found at class-body level (outside any
// function).
type Result struct {
	Class     string
	Functions []*model.Function
	Global    []*model.Statement
}

// ParseFile runs the full parser pipeline over a decoded file: class
// extraction, then a top-level scheduler that additionally recognises
// function headers and silently skips a bare class-closing "}".
//
// ambientClass is the ambient class name carried over from a previous file
// in a multi-file run; it is used verbatim when this file has no class
// declaration of its own, and overwritten when one is found — a
// deliberate limitation, not an oversight.
func ParseFile(src []byte, ambientClass string) *Result {
	lines := readLines(src)
	class := ambientClass
	classLineIdx := -1
	if found, idx, ok := extractClass(lines); ok {
		class = found
		classLineIdx = idx
	}
	scope := model.NewScope()

	res := &Result{Class: class}

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		switch {
		case trimmed == "":
			i++
		case i == classLineIdx:
			// the class declaration's opening line, silently consumed
			// symmetric with the bare "}" class closer below
			i++
		case trimmed == "}":
			// bare class closer, silently skipped at top level
			i++
		default:
			if m := funcHeaderPattern.FindStringSubmatch(trimmed); m != nil {
				fn, next := parseFunction(lines, i, m, scope, class)
				res.Functions = append(res.Functions, fn)
				i = next
				continue
			}
			var stmt *model.Statement
			stmt, i = parseLine(lines, i, trimmed, scope, class)
			res.Global = append(res.Global, stmt)
		}
	}
	return res
}

// parseFunction builds a Function from a matched header and recurses into
// its body, wrapping a monitor-method's body in a synthetic outer
// MonitorRegion.
func parseFunction(lines []string, i int, header []string, fileScope *model.Scope, class string) (*model.Function, int) {
	modifiers, returnType, name, rawParams := header[1], strings.TrimSpace(header[2]), header[3], header[4]
	line := i + 1

	params := parseParams(rawParams)
	funcScope := fileScope.Child()
	for _, p := range params {
		funcScope.Declare(p.Name, p.Type, line)
	}

	body, next := parseBlock(lines, i+1, funcScope, class)

	monitor := hasModifier(modifiers, "synchronized")
	if monitor {
		body = []*model.Statement{resolver.SyntheticOuterMonitor(class, line, body)}
	}

	fn := &model.Function{
		Class:      class,
		ReturnType: returnType,
		Name:       name,
		Params:     params,
		Line:       line,
		Body:       body,
		Monitor:    monitor,
	}
	return fn, next
}
