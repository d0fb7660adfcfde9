package executor

import "context"

// Runtime is the host integration surface for field resolution.
//
// Contract
//   - objectType is the GraphQL type name (e.g. "Query"), field the field name
//     on that type. source is the parent object value (nil for root fields).
//     args maps argument names to already-coerced Go values; arguments that
//     resolved to no value are absent from the map, distinct from an explicit
//     null entry.
//   - Implementations must not mutate source or args. The executor may call
//     ResolveField concurrently for independent operations, so implementations
//     should be stateless or otherwise concurrency-safe.
//   - A returned error becomes a located GraphQL error; for Non-Null field
//     types the null is propagated to the nearest nullable ancestor.
//   - Return (nil, nil) to produce a GraphQL null for nullable fields.
type Runtime interface {
	ResolveField(ctx context.Context, objectType, field string, source any, args map[string]any) (any, error)
}

// RuntimeFunc adapts a function to the Runtime interface.
type RuntimeFunc func(ctx context.Context, objectType, field string, source any, args map[string]any) (any, error)

func (f RuntimeFunc) ResolveField(ctx context.Context, objectType, field string, source any, args map[string]any) (any, error) {
	return f(ctx, objectType, field, source, args)
}
