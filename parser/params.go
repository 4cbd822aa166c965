package parser

import (
	"strings"

	"github.com/viant/lockscan/model"
)

// parseParams splits a raw parameter list on commas, trims each piece, and
// re-splits it on whitespace; a parameter contributes only when it yields
// at least two tokens (type, name) — the last token is the name, every
// preceding token joins the declared type. This is a deliberately naive
// split: a generic type containing a comma ("Map<K, V> m") is mis-split.
func parseParams(raw string) []model.Parameter {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var params []model.Parameter
	for _, part := range strings.Split(raw, ",") {
		tokens := strings.Fields(strings.TrimSpace(part))
		if len(tokens) < 2 {
			continue
		}
		name := tokens[len(tokens)-1]
		typ := strings.Join(tokens[:len(tokens)-1], " ")
		params = append(params, model.Parameter{Type: typ, Name: name})
	}
	return params
}
