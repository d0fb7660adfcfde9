// Package introspection answers __schema and __type queries by resolving
// fields directly off the schema descriptors.
package introspection

import (
	"context"
	"encoding/json"
	"sort"

	executor "github.com/knowbody/graphql-js/internal/executor"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// Wrap returns a runtime that handles introspection fields itself and
// forwards everything else to base, together with the schema extended with
// the introspection types. Serve the extended schema with the wrapped
// runtime; the original pair keeps working unchanged.
func Wrap(base executor.Runtime, sch *schema.Schema) (executor.Runtime, *schema.Schema) {
	extended := extendSchema(sch)
	return &runtime{base: base, schema: sch, rootName: sch.QueryType}, extended
}

type runtime struct {
	base     executor.Runtime
	schema   *schema.Schema // introspection reports the original schema
	rootName string
}

func (r *runtime) ResolveField(ctx context.Context, objectType, field string, source any, args map[string]any) (any, error) {
	switch src := source.(type) {
	case *schema.Schema:
		if v, ok := resolveSchemaField(src, field); ok {
			return v, nil
		}
	case *schema.Type:
		if v, ok := resolveTypeField(r.schema, src, field); ok {
			return v, nil
		}
	case *schema.TypeRef:
		return resolveTypeRefField(r.schema, src, field), nil
	case *schema.Field:
		if v, ok := resolveFieldField(src, field); ok {
			return v, nil
		}
	case *schema.InputValue:
		if v, ok := resolveInputValueField(src, field); ok {
			return v, nil
		}
	case *schema.EnumValue:
		if v, ok := resolveEnumValueField(src, field); ok {
			return v, nil
		}
	case *schema.Directive:
		if v, ok := resolveDirectiveField(src, field); ok {
			return v, nil
		}
	}

	if objectType == r.rootName {
		switch field {
		case "__schema":
			return r.schema, nil
		case "__type":
			name, _ := args["name"].(string)
			if t := r.schema.Types[name]; t != nil {
				return t, nil
			}
			return nil, nil
		}
	}

	return r.base.ResolveField(ctx, objectType, field, source, args)
}

func resolveSchemaField(sch *schema.Schema, field string) (any, bool) {
	switch field {
	case "types":
		// Map iteration order is random; report types sorted by name.
		out := make([]*schema.Type, 0, len(sch.Types))
		for _, t := range sch.Types {
			out = append(out, t)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	case "queryType":
		return sch.GetQueryType(), true
	case "mutationType":
		return sch.GetMutationType(), true
	case "directives":
		out := make([]*schema.Directive, 0, len(sch.Directives))
		for _, d := range sch.Directives {
			out = append(out, d)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, true
	case "description":
		return nil, true
	}
	return nil, false
}

func resolveTypeField(sch *schema.Schema, t *schema.Type, field string) (any, bool) {
	switch field {
	case "kind":
		return string(t.Kind), true
	case "name":
		return t.Name, true
	case "description":
		return nullableString(t.Description), true
	case "fields":
		if t.Kind != schema.TypeKindObject {
			return nil, true
		}
		return t.Fields, true
	case "enumValues":
		if t.Kind != schema.TypeKindEnum {
			return nil, true
		}
		return t.EnumValues, true
	case "inputFields":
		if t.Kind != schema.TypeKindInputObject {
			return nil, true
		}
		return t.InputFields, true
	case "ofType":
		// Only wrapper references expose ofType; named types never do.
		return nil, true
	}
	return nil, false
}

// resolveTypeRefField maps a TypeRef onto the __Type shape. Wrapper
// references answer kind/name/ofType themselves; named references delegate
// the remaining fields to their type definition.
func resolveTypeRefField(sch *schema.Schema, tr *schema.TypeRef, field string) any {
	switch field {
	case "kind":
		if tr.Kind == schema.TypeRefKindNamed {
			if def := sch.Types[tr.Named]; def != nil {
				return string(def.Kind)
			}
		}
		return string(tr.Kind)
	case "name":
		if tr.Kind == schema.TypeRefKindNamed {
			return tr.Named
		}
		return nil
	case "ofType":
		if tr.Kind == schema.TypeRefKindList || tr.Kind == schema.TypeRefKindNonNull {
			return tr.OfType
		}
		return nil
	default:
		if tr.Kind == schema.TypeRefKindNamed {
			if def := sch.Types[tr.Named]; def != nil {
				v, _ := resolveTypeField(sch, def, field)
				return v
			}
		}
		return nil
	}
}

func resolveFieldField(f *schema.Field, field string) (any, bool) {
	switch field {
	case "name":
		return f.Name, true
	case "description":
		return nullableString(f.Description), true
	case "args":
		if f.Arguments == nil {
			return []*schema.InputValue{}, true
		}
		return f.Arguments, true
	case "type":
		return f.Type, true
	case "isDeprecated":
		return false, true
	case "deprecationReason":
		return nil, true
	}
	return nil, false
}

func resolveInputValueField(v *schema.InputValue, field string) (any, bool) {
	switch field {
	case "name":
		return v.Name, true
	case "description":
		return nullableString(v.Description), true
	case "type":
		return v.Type, true
	case "defaultValue":
		// Rendered in GraphQL literal syntax, not JSON.
		if v.DefaultValue != nil {
			return v.DefaultValue.String(), true
		}
		// Go defaults have no literal node; JSON is close enough for the
		// scalar and object shapes they can hold.
		if v.GoDefault != nil {
			if data, err := json.Marshal(v.GoDefault); err == nil {
				return string(data), true
			}
		}
		return nil, true
	}
	return nil, false
}

func resolveEnumValueField(ev *schema.EnumValue, field string) (any, bool) {
	switch field {
	case "name":
		return ev.Name, true
	case "description":
		return nullableString(ev.Description), true
	case "isDeprecated":
		return false, true
	case "deprecationReason":
		return nil, true
	}
	return nil, false
}

func resolveDirectiveField(d *schema.Directive, field string) (any, bool) {
	switch field {
	case "name":
		return d.Name, true
	case "description":
		return nullableString(d.Description), true
	case "locations":
		return d.Locations, true
	case "args":
		if d.Arguments == nil {
			return []*schema.InputValue{}, true
		}
		return d.Arguments, true
	}
	return nil, false
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
