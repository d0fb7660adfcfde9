// Package server exposes the executor as a GraphQL-over-HTTP endpoint.
// It parses requests, runs the executor, and writes the standard GraphQL
// response envelope.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	eventbus "github.com/knowbody/graphql-js/internal/eventbus"
	events "github.com/knowbody/graphql-js/internal/events"
	executor "github.com/knowbody/graphql-js/internal/executor"
	language "github.com/knowbody/graphql-js/internal/language"
	reqid "github.com/knowbody/graphql-js/internal/reqid"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// Handler is an http.Handler serving a GraphQL endpoint.
type Handler struct {
	exec *executor.Executor
	opt  Options
}

type Options struct {
	// Timeout sets a default timeout if the incoming request context has none.
	// 0 means no default timeout.
	Timeout time.Duration

	// Pretty enables indented JSON responses.
	Pretty bool

	// MaxBodyBytes limits the size of the request body. 0 means unlimited.
	MaxBodyBytes int64

	// CORS configuration. If AllowedOrigins is empty, CORS is disabled.
	CORS CORSOptions
}

type Option func(*Options)

func WithTimeout(d time.Duration) Option { return func(o *Options) { o.Timeout = d } }
func WithPretty() Option                 { return func(o *Options) { o.Pretty = true } }
func WithMaxBodyBytes(n int64) Option    { return func(o *Options) { o.MaxBodyBytes = n } }
func WithCORS(origins ...string) Option {
	return func(o *Options) { o.CORS.AllowedOrigins = origins }
}

// CORSOptions holds simple CORS settings.
type CORSOptions struct {
	AllowedOrigins []string
}

// New creates a GraphQL HTTP handler serving s through the given runtime.
func New(runtime executor.Runtime, s *schema.Schema, opts ...Option) *Handler {
	op := Options{Timeout: 10 * time.Second}
	for _, f := range opts {
		f(&op)
	}
	return &Handler{exec: executor.NewExecutor(runtime, s), opt: op}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if _, ok := ctx.Deadline(); !ok && h.opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opt.Timeout)
		defer cancel()
	}

	ctx, id := reqid.NewContext(ctx)
	w.Header().Set("X-Request-Id", id)

	status := http.StatusOK
	start := time.Now()
	eventbus.Publish(ctx, events.HTTPStart{Request: r})
	defer func() {
		eventbus.Publish(ctx, events.HTTPFinish{Request: r, Status: status, Duration: time.Since(start)})
	}()

	if len(h.opt.CORS.AllowedOrigins) > 0 {
		setCORSHeaders(w, r, h.opt.CORS)
	}
	if r.Method == http.MethodOptions {
		status = http.StatusNoContent
		w.WriteHeader(status)
		return
	}

	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		status = http.StatusMethodNotAllowed
		writeJSON(w, status, errorResponse("method not allowed"), h.opt.Pretty)
		return
	}

	req, berr := parseRequest(r, h.opt.MaxBodyBytes)
	if berr != "" {
		status = http.StatusBadRequest
		if berr == errBodyTooLarge {
			status = http.StatusRequestEntityTooLarge
		}
		writeJSON(w, status, errorResponse(berr), h.opt.Pretty)
		return
	}

	writeJSON(w, status, h.executeOne(ctx, req), h.opt.Pretty)
}

func (h *Handler) executeOne(ctx context.Context, req graphQLRequest) *executor.ExecutionResult {
	doc, err := language.ParseQuery(req.Query)
	if err != nil {
		if ge, ok := err.(*language.Error); ok {
			return parseErrorResponse(ge)
		}
		return errorResponse(err.Error())
	}

	opType := ""
	if op := doc.Operations.ForName(req.OperationName); op != nil {
		opType = string(op.Operation)
	} else if req.OperationName == "" && len(doc.Operations) == 1 {
		opType = string(doc.Operations[0].Operation)
	}

	start := time.Now()
	eventbus.Publish(ctx, events.GraphQLStart{
		Query:         req.Query,
		OperationName: req.OperationName,
		OperationType: opType,
	})
	result := h.exec.ExecuteRequest(ctx, doc, req.OperationName, req.Variables, nil)
	errs := make([]error, 0, len(result.Errors))
	for i := range result.Errors {
		errs = append(errs, &result.Errors[i])
	}
	eventbus.Publish(ctx, events.GraphQLFinish{
		Query:         req.Query,
		OperationName: req.OperationName,
		OperationType: opType,
		Errors:        errs,
		Duration:      time.Since(start),
	})
	return result
}

// graphQLRequest is the standard request body. Variables stay raw so the
// executor can preserve the caller's object key order in error messages.
type graphQLRequest struct {
	Query         string          `json:"query"`
	OperationName string          `json:"operationName,omitempty"`
	Variables     json.RawMessage `json:"variables,omitempty"`
}

const errBodyTooLarge = "request body too large"

func parseRequest(r *http.Request, maxBody int64) (graphQLRequest, string) {
	if r.Method == http.MethodGet {
		q := r.URL.Query()
		if q.Get("query") == "" {
			return graphQLRequest{}, "missing query parameter"
		}
		req := graphQLRequest{
			Query:         q.Get("query"),
			OperationName: q.Get("operationName"),
		}
		if v := q.Get("variables"); v != "" {
			if !json.Valid([]byte(v)) {
				return graphQLRequest{}, "variables parameter is not valid JSON"
			}
			req.Variables = json.RawMessage(v)
		}
		return req, ""
	}

	if ct := r.Header.Get("Content-Type"); ct != "" &&
		ct != "application/json" && !strings.HasPrefix(ct, "application/json;") {
		return graphQLRequest{}, "unsupported Content-Type"
	}

	reader := io.Reader(r.Body)
	if maxBody > 0 {
		reader = io.LimitReader(r.Body, maxBody+1)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return graphQLRequest{}, "failed to read request body"
	}
	if maxBody > 0 && int64(len(body)) > maxBody {
		return graphQLRequest{}, errBodyTooLarge
	}

	var req graphQLRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return graphQLRequest{}, "request body is not valid JSON"
	}
	if req.Query == "" {
		return graphQLRequest{}, "missing query"
	}
	return req, ""
}

func errorResponse(message string) *executor.ExecutionResult {
	return &executor.ExecutionResult{Errors: []executor.GraphQLError{{Message: message}}}
}

func parseErrorResponse(err *language.Error) *executor.ExecutionResult {
	ge := executor.GraphQLError{Message: err.Message}
	for _, loc := range err.Locations {
		ge.Locations = append(ge.Locations, executor.Location{Line: loc.Line, Column: loc.Column})
	}
	return &executor.ExecutionResult{Errors: []executor.GraphQLError{ge}}
}

func writeJSON(w http.ResponseWriter, status int, v any, pretty bool) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	_ = enc.Encode(v)
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request, opts CORSOptions) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return
	}
	allowed, wildcard := false, false
	for _, o := range opts.AllowedOrigins {
		switch o {
		case "*":
			allowed, wildcard = true, true
		case origin:
			allowed = true
		}
	}
	if !allowed {
		return
	}
	if wildcard {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	} else {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Vary", "Origin")
	}
	if r.Method == http.MethodOptions {
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if hdr := r.Header.Get("Access-Control-Request-Headers"); hdr != "" {
			w.Header().Set("Access-Control-Allow-Headers", hdr)
		}
	}
}
