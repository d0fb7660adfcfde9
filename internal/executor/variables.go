package executor

import (
	"fmt"

	"github.com/tidwall/gjson"

	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// coerceVariableValues binds an operation's declared variables against the
// caller-supplied raw variables JSON. Variables JSON is taken as raw bytes so
// the failing value can be echoed back with its original key order.
//
// Every definition is attempted even after one fails; the returned errors
// cover all failing variables. This is the one place errors accumulate;
// within a single variable the first nested failure wins.
func coerceVariableValues(s *schema.Schema, operation *language.OperationDefinition, variablesJSON []byte) (map[string]any, []GraphQLError) {
	variables := gjson.ParseBytes(variablesJSON)

	coerced := make(map[string]any)
	var errs []GraphQLError
	for _, def := range operation.VariableDefinitions {
		t := schema.TypeRefFromAST(def.Type)

		provided := variables.Get(def.Variable)
		var raw rawValue = jsonValue{provided}
		if !provided.Exists() {
			if def.DefaultValue != nil {
				raw = newLiteralValue(def.DefaultValue, nil)
			} else {
				raw = noValue{}
			}
		}

		v, present, err := coerceValue(s, t, raw)
		if err != nil {
			errs = append(errs, GraphQLError{
				Message: fmt.Sprintf("Variable $%s expected value of type %s but got: %s.",
					def.Variable, schema.RenderTypeRef(t), renderRaw(raw)),
				Locations: locationsOf(def.Position),
			})
			continue
		}
		if present {
			coerced[def.Variable] = v
		}
	}
	return coerced, errs
}

// locationsOf converts the position of a variable definition's `$name` token
// into the error location list. Line and column are 1-indexed.
func locationsOf(pos *language.Position) []Location {
	if pos == nil {
		return nil
	}
	return []Location{{Line: pos.Line, Column: pos.Column}}
}
