package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	defer func() { os.Stdout = old }()

	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	go func() { io.Copy(&buf, r); close(done) }()

	err := fn()
	w.Close()
	<-done
	return buf.String(), err
}

func TestHelp(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return run([]string{"help", "serve"})
	})
	require.NoError(t, err)
	require.Contains(t, out, "serve FLAGS")
}

func TestUnknownCommand(t *testing.T) {
	require.Error(t, run([]string{"frobnicate"}))
}

func TestFmtSDL(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "schema.graphql")
	require.NoError(t, os.WriteFile(src, []byte(`
		type Query { hello(name: String = "world"): String }
		enum Color { RED GREEN }
	`), 0644))

	out, err := captureStdout(t, func() error {
		return run([]string{"fmt-sdl", "-graphql.schema", src})
	})
	require.NoError(t, err)
	require.Contains(t, out, "type Query")
	require.Contains(t, out, `hello(name: String = "world"): String`)
	require.Contains(t, out, "enum Color")
}

func TestLoadDataRuntime(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(src, []byte(`{"hello":"world","hero":{"name":"R2-D2"}}`), 0644))

	rt, err := loadDataRuntime(src)
	require.NoError(t, err)

	// Root fields resolve off the document root.
	v, err := rt.ResolveField(context.Background(), "Query", "hello", nil, nil)
	require.NoError(t, err)
	require.Equal(t, "world", v)

	// Nested fields resolve off their parent object.
	hero, err := rt.ResolveField(context.Background(), "Query", "hero", nil, nil)
	require.NoError(t, err)
	name, err := rt.ResolveField(context.Background(), "Character", "name", hero, nil)
	require.NoError(t, err)
	require.Equal(t, "R2-D2", name)

	// Missing keys are a GraphQL null, not an error.
	v, err = rt.ResolveField(context.Background(), "Query", "missing", nil, nil)
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestLoadDataRuntimeRejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(src, []byte(`[1,2,3]`), 0644))

	_, err := loadDataRuntime(src)
	require.Error(t, err)
}

func TestFmtSDLRejectsInvalidSchema(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.graphql")
	require.NoError(t, os.WriteFile(src, []byte(`type Query {`), 0644))

	err := run([]string{"fmt-sdl", "-graphql.schema", src})
	require.Error(t, err)
}
