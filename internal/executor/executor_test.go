package executor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const executorSDL = `
schema { query: Query, mutation: Mutation }

type Query {
  fieldWithObjectInput(input: TestInputObject): String
  hello: String
  hero: Character
  heroes: [Character!]
  mood: Mood
  mustHave: String!
  boom: String
}

type Mutation {
  rename(name: String!): String
}

type Character {
  name: String!
  friends: [String]
}

input TestInputObject {
  a: String
  b: [String]
  c: String!
}

enum Mood { HAPPY GRUMPY }
`

type character struct {
	name    string
	friends []string
}

func newTestExecutor(t *testing.T, overrides map[string]MockResolver) *Executor {
	t.Helper()
	resolvers := map[string]MockResolver{
		"Query.fieldWithObjectInput": func(_ context.Context, _ any, args map[string]any) (any, error) {
			input, ok := args["input"]
			if !ok {
				return nil, nil
			}
			data, err := json.Marshal(input)
			if err != nil {
				return nil, err
			}
			return string(data), nil
		},
		"Query.hello": NewMockValueResolver("world"),
		"Query.hero": NewMockValueResolver(&character{
			name:    "R2-D2",
			friends: []string{"Luke", "Leia"},
		}),
		"Query.mood": NewMockValueResolver("HAPPY"),
		"Character.name": func(_ context.Context, source any, _ map[string]any) (any, error) {
			return source.(*character).name, nil
		},
		"Character.friends": func(_ context.Context, source any, _ map[string]any) (any, error) {
			return source.(*character).friends, nil
		},
		"Mutation.rename": func(_ context.Context, _ any, args map[string]any) (any, error) {
			return args["name"], nil
		},
	}
	for k, v := range overrides {
		resolvers[k] = v
	}
	return NewExecutor(NewMockRuntime(resolvers), mustBuildSchema(t, executorSDL))
}

func execQuery(t *testing.T, exec *Executor, query, vars string) *ExecutionResult {
	t.Helper()
	doc := mustParseQuery(t, query)
	var raw []byte
	if vars != "" {
		raw = []byte(vars)
	}
	return exec.ExecuteRequest(context.Background(), doc, "", raw, nil)
}

func TestExecuteSimpleQuery(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `{ hello }`, "")

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{"hello": "world"}, res.Data)
}

func TestExecuteObjectInputFromLiteral(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec,
		`{ fieldWithObjectInput(input: {a: "foo", b: ["bar"], c: "baz"}) }`, "")

	require.Empty(t, res.Errors)
	require.Equal(t,
		map[string]any{"fieldWithObjectInput": `{"a":"foo","b":["bar"],"c":"baz"}`},
		res.Data)
}

func TestExecuteObjectInputFromVariable(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec,
		`query ($input: TestInputObject) { fieldWithObjectInput(input: $input) }`,
		`{"input": {"a": "foo", "b": "bar", "c": "baz"}}`)

	require.Empty(t, res.Errors)
	require.Equal(t,
		map[string]any{"fieldWithObjectInput": `{"a":"foo","b":["bar"],"c":"baz"}`},
		res.Data)
}

func TestBindingFailureAbortsExecution(t *testing.T) {
	resolved := false
	exec := newTestExecutor(t, map[string]MockResolver{
		"Query.fieldWithObjectInput": func(_ context.Context, _ any, _ map[string]any) (any, error) {
			resolved = true
			return nil, nil
		},
	})
	res := execQuery(t, exec,
		`query ($input: TestInputObject) { fieldWithObjectInput(input: $input) }`,
		`{"input": {"a": "foo", "b": "bar", "c": null}}`)

	require.Nil(t, res.Data)
	require.Len(t, res.Errors, 1)
	require.Equal(t,
		`Variable $input expected value of type TestInputObject but got: {"a":"foo","b":"bar","c":null}.`,
		res.Errors[0].Message)
	require.False(t, resolved, "no resolver may run after a binding failure")
}

func TestExecuteNestedObjectsAndLists(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `{ hero { name friends } }`, "")

	require.Empty(t, res.Errors)
	want := map[string]any{
		"hero": map[string]any{
			"name":    "R2-D2",
			"friends": []any{"Luke", "Leia"},
		},
	}
	if diff := cmp.Diff(want, res.Data); diff != "" {
		t.Errorf("data mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteEnumSerialization(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `{ mood }`, "")

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{"mood": "HAPPY"}, res.Data)
}

func TestExecuteTypename(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `{ __typename hero { __typename } }`, "")

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{
		"__typename": "Query",
		"hero":       map[string]any{"__typename": "Character"},
	}, res.Data)
}

func TestExecuteAliases(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `{ greeting: hello }`, "")

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{"greeting": "world"}, res.Data)
}

func TestExecuteFragments(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `
		{
			hero {
				...charFields
				... on Character { friends }
			}
		}
		fragment charFields on Character { name }
	`, "")

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{
		"hero": map[string]any{
			"name":    "R2-D2",
			"friends": []any{"Luke", "Leia"},
		},
	}, res.Data)
}

func TestExecuteSkipAndInclude(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `
		query ($skip: Boolean!, $keep: Boolean!) {
			hello @skip(if: $skip)
			mood @include(if: $keep)
		}
	`, `{"skip": true, "keep": true}`)

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{"mood": "HAPPY"}, res.Data)
}

func TestExecuteMutation(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `mutation { rename(name: "Ripley") }`, "")

	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{"rename": "Ripley"}, res.Data)
}

func TestExecuteResolverError(t *testing.T) {
	exec := newTestExecutor(t, map[string]MockResolver{
		"Query.boom": NewMockErrorResolver(errors.New("kaboom")),
	})
	res := execQuery(t, exec, `{ hello boom }`, "")

	require.Equal(t, map[string]any{"hello": "world", "boom": nil}, res.Data)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "kaboom", res.Errors[0].Message)
	require.Equal(t, Path{"boom"}, res.Errors[0].Path)
}

func TestExecuteNonNullViolation(t *testing.T) {
	exec := newTestExecutor(t, map[string]MockResolver{
		"Query.mustHave": NewMockValueResolver(nil),
	})
	res := execQuery(t, exec, `{ hello mustHave }`, "")

	// Nothing nullable sits above the root selection set, so the violation
	// nulls the whole data object.
	require.Nil(t, res.Data)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "Cannot return null for non-nullable field mustHave", res.Errors[0].Message)
}

func TestExecuteNonNullViolationStopsAtNullableAncestor(t *testing.T) {
	exec := newTestExecutor(t, map[string]MockResolver{
		"Character.name": NewMockValueResolver(nil),
	})
	res := execQuery(t, exec, `{ hello hero { name } }`, "")

	// hero is nullable, so propagation stops there and siblings survive.
	require.Equal(t, map[string]any{"hello": "world", "hero": nil}, res.Data)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "Cannot return null for non-nullable field hero.name", res.Errors[0].Message)
}

func TestExecuteNonNullListElementNullsList(t *testing.T) {
	exec := newTestExecutor(t, map[string]MockResolver{
		"Query.heroes": NewMockValueResolver([]any{
			&character{name: "Luke"},
			nil,
		}),
	})
	res := execQuery(t, exec, `{ heroes { name } }`, "")

	require.Equal(t, map[string]any{"heroes": nil}, res.Data)
	require.Len(t, res.Errors, 1)
}

func TestExecuteOperationSelection(t *testing.T) {
	exec := newTestExecutor(t, nil)
	doc := mustParseQuery(t, `
		query A { hello }
		query B { mood }
	`)

	res := exec.ExecuteRequest(context.Background(), doc, "B", nil, nil)
	require.Empty(t, res.Errors)
	require.Equal(t, map[string]any{"mood": "HAPPY"}, res.Data)

	res = exec.ExecuteRequest(context.Background(), doc, "", nil, nil)
	require.Len(t, res.Errors, 1)
	require.Equal(t, "operation not found", res.Errors[0].Message)
}

func TestExecuteUnknownField(t *testing.T) {
	exec := newTestExecutor(t, nil)
	res := execQuery(t, exec, `{ nope }`, "")

	require.Len(t, res.Errors, 1)
	require.Equal(t, "Cannot query field 'nope' on type 'Query'", res.Errors[0].Message)
}
