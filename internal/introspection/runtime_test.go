package introspection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	executor "github.com/knowbody/graphql-js/internal/executor"
	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// noopRuntime resolves every field to nil.
var noopRuntime = executor.RuntimeFunc(
	func(context.Context, string, string, any, map[string]any) (any, error) {
		return nil, nil
	})

const testSDL = `
type Query {
  hello(name: String = "world"): String
  size(unit: Unit): Int
}

enum Unit {
  METER
  FOOT
}

input Point {
  x: Int!
  y: Int!
}
`

func execute(t *testing.T, query string) map[string]any {
	t.Helper()
	sch, err := schema.BuildFromSDL(testSDL)
	require.NoError(t, err)
	rt, extended := Wrap(noopRuntime, sch)
	exec := executor.NewExecutor(rt, extended)

	doc, err := language.ParseQuery(query)
	require.NoError(t, err)
	res := exec.ExecuteRequest(context.Background(), doc, "", nil, nil)
	require.Empty(t, res.Errors)
	return res.Data.(map[string]any)
}

func TestSchemaQueryType(t *testing.T) {
	data := execute(t, `{ __schema { queryType { name kind } } }`)

	qt := data["__schema"].(map[string]any)["queryType"].(map[string]any)
	require.Equal(t, "Query", qt["name"])
	require.Equal(t, "OBJECT", qt["kind"])
}

func TestTypeFieldsAndArgs(t *testing.T) {
	data := execute(t, `{
		__type(name: "Query") {
			fields {
				name
				args { name defaultValue type { kind name ofType { name } } }
			}
		}
	}`)

	fields := data["__type"].(map[string]any)["fields"].([]any)
	require.Len(t, fields, 2)

	hello := fields[0].(map[string]any)
	require.Equal(t, "hello", hello["name"])
	args := hello["args"].([]any)
	require.Len(t, args, 1)
	arg := args[0].(map[string]any)
	require.Equal(t, "name", arg["name"])
	require.Equal(t, `"world"`, arg["defaultValue"])
	require.Equal(t, map[string]any{"kind": "SCALAR", "name": "String", "ofType": nil}, arg["type"])
}

func TestGoDefaultRenderedAsDefaultValue(t *testing.T) {
	sch, err := schema.BuildFromSDL(testSDL)
	require.NoError(t, err)
	rt, _ := Wrap(noopRuntime, sch)

	iv := schema.NewInputValue("limit", schema.NamedType("Int")).SetGoDefault(25)
	v, err := rt.ResolveField(context.Background(), "__InputValue", "defaultValue", iv, nil)
	require.NoError(t, err)
	require.Equal(t, "25", v)
}

func TestTypeRefWrappers(t *testing.T) {
	data := execute(t, `{
		__type(name: "Point") {
			inputFields {
				name
				type { kind name ofType { kind name } }
			}
		}
	}`)

	inputs := data["__type"].(map[string]any)["inputFields"].([]any)
	require.Len(t, inputs, 2)
	x := inputs[0].(map[string]any)
	require.Equal(t, "x", x["name"])
	require.Equal(t, map[string]any{
		"kind": "NON_NULL",
		"name": nil,
		"ofType": map[string]any{
			"kind": "SCALAR",
			"name": "Int",
		},
	}, x["type"])
}

func TestEnumValues(t *testing.T) {
	data := execute(t, `{ __type(name: "Unit") { kind enumValues { name } } }`)

	typ := data["__type"].(map[string]any)
	require.Equal(t, "ENUM", typ["kind"])
	values := typ["enumValues"].([]any)
	require.Equal(t, "METER", values[0].(map[string]any)["name"])
	require.Equal(t, "FOOT", values[1].(map[string]any)["name"])
}

func TestUnknownTypeIsNull(t *testing.T) {
	data := execute(t, `{ __type(name: "Nope") { name } }`)
	require.Nil(t, data["__type"])
}

func TestDirectivesListed(t *testing.T) {
	data := execute(t, `{ __schema { directives { name locations args { name type { kind } } } } }`)

	dirs := data["__schema"].(map[string]any)["directives"].([]any)
	require.Len(t, dirs, 2)
	names := []string{
		dirs[0].(map[string]any)["name"].(string),
		dirs[1].(map[string]any)["name"].(string),
	}
	require.Equal(t, []string{"include", "skip"}, names)
}

func TestOriginalSchemaNotExtended(t *testing.T) {
	sch, err := schema.BuildFromSDL(testSDL)
	require.NoError(t, err)
	_, extended := Wrap(noopRuntime, sch)

	require.Nil(t, sch.Types["__Schema"])
	require.NotNil(t, extended.Types["__Schema"])
	require.Nil(t, sch.GetQueryType().FieldByName("__schema"))
	require.NotNil(t, extended.GetQueryType().FieldByName("__schema"))

	// Introspection reports the original type set, without the __ types.
	rt, _ := Wrap(noopRuntime, sch)
	v, err := rt.ResolveField(context.Background(), "Query", "__schema", nil, nil)
	require.NoError(t, err)
	reported := v.(*schema.Schema)
	require.Nil(t, reported.Types["__Schema"])
}
