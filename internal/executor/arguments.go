package executor

import (
	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// coerceArgumentValues resolves the declared arguments of a field or
// directive from the literals supplied in the query. A literal that is a
// variable reference substitutes the already-bound coerced value without
// re-coercion. Arguments with no usable literal fall back to their schema
// default, coerced once. Arguments that resolve to no value are left out of
// the map entirely so resolvers observe absence, not a null entry. A failing
// argument is likewise omitted rather than surfaced; argument literals were
// validated before execution.
func coerceArgumentValues(s *schema.Schema, argDefs []*schema.InputValue, literals language.ArgumentList, variableValues map[string]any) map[string]any {
	coerced := make(map[string]any, len(argDefs))
	for _, def := range argDefs {
		var raw rawValue = noValue{}
		if arg := literals.ForName(def.Name); arg != nil {
			raw = newLiteralValue(arg.Value, variableValues)
		}
		// An omitted argument, or a reference to an unbound variable, takes
		// the schema default: the literal node for SDL-built schemas, the
		// native Go value for programmatically built ones.
		if raw.absent() {
			switch {
			case def.DefaultValue != nil:
				raw = newLiteralValue(def.DefaultValue, nil)
			case def.GoDefault != nil:
				raw = goValue{def.GoDefault}
			}
		}
		v, present, err := coerceValue(s, def.Type, raw)
		if err != nil || !present {
			continue
		}
		coerced[def.Name] = v
	}
	return coerced
}
