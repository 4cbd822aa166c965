package parser

import "regexp"

// Line-matching patterns, compiled once at package scope rather than per
// call.
//
// These patterns are deliberately simplistic: one statement per physical
// line, no string/comment awareness, no nested parens inside a monitor
// expression. That is the documented behavior, not a bug to be fixed.
var (
	classPattern = regexp.MustCompile(
		`^(?:(?:public|protected|private|abstract|final|static)\s+)*class\s+(\w+)`)

	monitorHeaderPattern = regexp.MustCompile(
		`^synchronized\s*\(\s*(.+?)\s*\)\s*\{$`)

	waitPattern = regexp.MustCompile(
		`^(?:(\w+)\.)?wait\(\)\s*;$`)

	// Leading field/local modifiers are skipped (not captured as part of
	// the type) so that a realistic lock field such as
	// "private final Object lock = new Object();" still resolves to
	// declared type "Object" rather than falling through to Generic.
	varDeclPattern = regexp.MustCompile(
		`^(?:(?:public|protected|private|static|final|volatile|transient)\s+)*` +
			`([A-Za-z_]\w*(?:\.\w+)*(?:<[^;{}]*>)?(?:\[\])*)\s+(\w+)\s*(?:=.*)?;$`)

	funcHeaderModifiers = `public|protected|private|static|final|abstract|synchronized`

	funcHeaderPattern = regexp.MustCompile(
		`^((?:(?:` + funcHeaderModifiers + `)\s+)*)` + // modifiers
			`([\w<>\[\],\s]+?)\s+` + // return type
			`(\w+)\s*` + // name
			`\(([^()]*)\)\s*` + // parameter list, no nested parens
			`(?:throws\s+[\w.,\s]+)?` + // optional throws clause
			`\{$`)
)
