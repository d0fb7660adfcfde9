package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/knowbody/graphql-js/internal/eventbus"
	"github.com/knowbody/graphql-js/internal/executor"
	"github.com/knowbody/graphql-js/internal/introspection"
	"github.com/knowbody/graphql-js/internal/otel"
	"github.com/knowbody/graphql-js/internal/schema"
	"github.com/knowbody/graphql-js/internal/server"
)

const rootUsage = `graphqld — GraphQL execution engine & tools

USAGE:
  graphqld <command> [flags]

COMMANDS:
  serve      Run an HTTP GraphQL endpoint over a JSON data document
  fmt-sdl    Parse GraphQL SDL and print it in canonical form
  help       Show help for any command
`

const serveUsage = `serve FLAGS:
  -graphql.schema <file>        GraphQL SDL file (required)
  -graphql.data <file>          JSON document resolved as the query root (required)
  -graphql.introspection <bool> Enable GraphQL introspection (default: true)
  -server.addr <addr>           HTTP listen address (default: :8080)
  -server.pretty                Pretty-print JSON responses
  -server.timeout <duration>    Per-request timeout, e.g. 10s (default: 10s)
  -server.max-body <bytes>      Max request body size (default: 1048576)
  -server.cors-origin <origin>  Allowed CORS origin. Repeatable; * allows any
  -otel.endpoint <addr>         OTLP collector endpoint
  -otel.service <name>          OpenTelemetry service name (default: graphqld)
`

const fmtSDLUsage = `fmt-sdl FLAGS:
  -graphql.schema <file>  GraphQL SDL file (required)
  -out <file>             Write canonical SDL to file (default: stdout)
  (Parsing always validates; exits non-zero on errors)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	global := flag.NewFlagSet("graphqld", flag.ContinueOnError)
	global.SetOutput(new(bytes.Buffer)) // silence automatic output
	if err := global.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, rootUsage)
		return err
	}
	remaining := global.Args()
	if len(remaining) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]
	switch cmd {
	case "serve":
		return cmdServe(cmdArgs)
	case "fmt-sdl":
		return cmdFmtSDL(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "serve":
		fmt.Print(serveUsage)
	case "fmt-sdl":
		fmt.Print(fmtSDLUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdServe(args []string) error {
	schemaFile := ""
	dataFile := ""
	enableIntrospection := true
	addr := ":8080"
	pretty := false
	timeout := 10 * time.Second
	maxBody := int64(1 << 20)
	otelEndpoint := ""
	otelService := "graphqld"
	var corsOrigins stringListFlag

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "graphql.schema", schemaFile, "GraphQL SDL file")
	fs.StringVar(&dataFile, "graphql.data", dataFile, "JSON document resolved as the query root")
	fs.BoolVar(&enableIntrospection, "graphql.introspection", enableIntrospection, "Enable GraphQL introspection")
	fs.StringVar(&addr, "server.addr", addr, "HTTP listen address")
	fs.BoolVar(&pretty, "server.pretty", pretty, "Pretty-print JSON responses")
	fs.DurationVar(&timeout, "server.timeout", timeout, "Per-request timeout")
	fs.Int64Var(&maxBody, "server.max-body", maxBody, "Max request body size")
	fs.Var(&corsOrigins, "server.cors-origin", "Allowed CORS origin")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, serveUsage)
		return fmt.Errorf("-graphql.schema is required")
	}
	if dataFile == "" {
		fmt.Fprint(os.Stderr, serveUsage)
		return fmt.Errorf("-graphql.data is required")
	}

	sch, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}
	rt, err := loadDataRuntime(dataFile)
	if err != nil {
		return err
	}

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if enableIntrospection {
		rt, sch = introspection.Wrap(rt, sch)
	}

	sopts := []server.Option{server.WithMaxBodyBytes(maxBody)}
	if pretty {
		sopts = append(sopts, server.WithPretty())
	}
	if timeout > 0 {
		sopts = append(sopts, server.WithTimeout(timeout))
	}
	if len(corsOrigins) > 0 {
		sopts = append(sopts, server.WithCORS(corsOrigins...))
	}
	h := server.New(rt, sch, sopts...)

	mux := http.NewServeMux()
	mux.Handle("/graphql", h)

	log.Printf("GraphQL server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func cmdFmtSDL(args []string) error {
	schemaFile := ""
	outFile := ""
	fs := flag.NewFlagSet("fmt-sdl", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "graphql.schema", schemaFile, "GraphQL SDL file")
	fs.StringVar(&outFile, "out", outFile, "Write canonical SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, fmtSDLUsage)
		return err
	}
	if schemaFile == "" {
		fmt.Fprint(os.Stderr, fmtSDLUsage)
		return fmt.Errorf("-graphql.schema is required")
	}

	sch, err := loadSchema(schemaFile)
	if err != nil {
		return err
	}
	sdl := schema.Render(sch)
	if outFile == "" {
		fmt.Print(sdl)
		return nil
	}
	return os.WriteFile(outFile, []byte(sdl), 0644)
}

func loadSchema(path string) (*schema.Schema, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	sch, err := schema.BuildFromSDL(string(src))
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return sch, nil
}

// loadDataRuntime serves a static JSON document: each field resolves by key
// lookup on its parent object, starting from the document root.
func loadDataRuntime(path string) (executor.Runtime, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("parse data: %w", err)
	}
	return executor.RuntimeFunc(func(_ context.Context, _, field string, source any, _ map[string]any) (any, error) {
		obj := root
		if m, ok := source.(map[string]any); ok {
			obj = m
		}
		return obj[field], nil
	}), nil
}
