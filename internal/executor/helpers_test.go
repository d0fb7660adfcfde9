package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// mustParseQuery parses a GraphQL query and fails the test on error.
func mustParseQuery(t *testing.T, q string) *language.QueryDocument {
	t.Helper()
	d, err := language.ParseQuery(q)
	require.NoError(t, err, "parse error")
	return d
}

// mustBuildSchema builds a schema from SDL and fails the test on error.
func mustBuildSchema(t *testing.T, sdl string, opts ...schema.BuildOption) *schema.Schema {
	t.Helper()
	s, err := schema.BuildFromSDL(sdl, opts...)
	require.NoError(t, err)
	return s
}
