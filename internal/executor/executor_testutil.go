package executor

import (
	"context"
	"fmt"
)

// MockResolver resolves a single field for MockRuntime.
type MockResolver func(ctx context.Context, source any, args map[string]any) (any, error)

// MockRuntime maps "Type.field" keys to resolvers.
type MockRuntime struct {
	resolvers map[string]MockResolver
}

func NewMockRuntime(resolvers map[string]MockResolver) *MockRuntime {
	return &MockRuntime{resolvers: resolvers}
}

func (r *MockRuntime) ResolveField(ctx context.Context, objectType, field string, source any, args map[string]any) (any, error) {
	if resolver, ok := r.resolvers[objectType+"."+field]; ok {
		return resolver(ctx, source, args)
	}
	return nil, fmt.Errorf("no resolver for %s.%s", objectType, field)
}

func NewMockValueResolver(v any) MockResolver {
	return func(context.Context, any, map[string]any) (any, error) { return v, nil }
}

func NewMockErrorResolver(err error) MockResolver {
	return func(context.Context, any, map[string]any) (any, error) { return nil, err }
}
