package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

const argumentsSDL = `
type Query {
  field(input: TestInputObject): String
  str(value: String): String
  withDefault(value: String = "default"): String
  num(value: Int!): String
}

input TestInputObject {
  a: String
  b: [String]
  c: String!
}
`

// resolveArgs runs argument coercion for the first field of the query's
// single top-level selection.
func resolveArgs(t *testing.T, query string, variableValues map[string]any) map[string]any {
	t.Helper()
	s := mustBuildSchema(t, argumentsSDL)
	doc := mustParseQuery(t, query)

	sel := doc.Operations[0].SelectionSet[0]
	field, ok := sel.(*language.Field)
	require.True(t, ok)

	def := s.GetQueryType().FieldByName(field.Name)
	require.NotNil(t, def, "unknown field %s", field.Name)
	return coerceArgumentValues(s, def.Arguments, field.Arguments, variableValues)
}

func TestArgumentFromLiteral(t *testing.T) {
	args := resolveArgs(t, `{ field(input: {a: "foo", b: ["bar"], c: "baz"}) }`, nil)
	require.Equal(t, map[string]any{
		"input": map[string]any{"a": "foo", "b": []any{"bar"}, "c": "baz"},
	}, args)
}

func TestArgumentLiteralListPromotion(t *testing.T) {
	args := resolveArgs(t, `{ field(input: {b: "solo", c: "baz"}) }`, nil)
	require.Equal(t, map[string]any{
		"input": map[string]any{"b": []any{"solo"}, "c": "baz"},
	}, args)
}

func TestArgumentFromBoundVariable(t *testing.T) {
	args := resolveArgs(t,
		`query ($input: TestInputObject) { field(input: $input) }`,
		map[string]any{"input": map[string]any{"c": "bound"}})
	require.Equal(t, map[string]any{
		"input": map[string]any{"c": "bound"},
	}, args)
}

func TestArgumentVariableNestedInLiteral(t *testing.T) {
	args := resolveArgs(t,
		`query ($v: String) { field(input: {c: $v}) }`,
		map[string]any{"v": "nested"})
	require.Equal(t, map[string]any{
		"input": map[string]any{"c": "nested"},
	}, args)
}

func TestArgumentUnboundVariableOmitted(t *testing.T) {
	args := resolveArgs(t,
		`query ($value: String) { str(value: $value) }`, nil)
	require.Empty(t, args)
}

func TestArgumentUnboundVariableFallsBackToDefault(t *testing.T) {
	args := resolveArgs(t,
		`query ($value: String) { withDefault(value: $value) }`, nil)
	require.Equal(t, map[string]any{"value": "default"}, args)
}

func TestArgumentOmittedTakesDefault(t *testing.T) {
	args := resolveArgs(t, `{ withDefault }`, nil)
	require.Equal(t, map[string]any{"value": "default"}, args)
}

func TestArgumentOmittedTakesGoDefault(t *testing.T) {
	s := mustBuildSchema(t, argumentsSDL)
	defs := []*schema.InputValue{
		schema.NewInputValue("limit", schema.NamedType("Int")).SetGoDefault(50),
	}
	args := coerceArgumentValues(s, defs, nil, nil)
	require.Equal(t, map[string]any{"limit": 50}, args)
}

func TestArgumentOmittedWithoutDefaultAbsent(t *testing.T) {
	args := resolveArgs(t, `{ str }`, nil)
	require.NotContains(t, args, "value")
}

func TestArgumentExplicitNull(t *testing.T) {
	args := resolveArgs(t, `{ str(value: null) }`, nil)
	require.Contains(t, args, "value")
	require.Nil(t, args["value"])
}

func TestArgumentExplicitNullBeatsDefault(t *testing.T) {
	args := resolveArgs(t, `{ withDefault(value: null) }`, nil)
	require.Contains(t, args, "value")
	require.Nil(t, args["value"])
}

func TestFailingArgumentIsOmitted(t *testing.T) {
	// Literal validation happens before execution; at coercion time a failing
	// argument silently stays out of the map.
	args := resolveArgs(t, `{ num(value: "NaN") }`, nil)
	require.Empty(t, args)
}
