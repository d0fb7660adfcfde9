package executor

import (
	"fmt"

	schema "github.com/knowbody/graphql-js/internal/schema"
)

// coerceValue walks a type reference alongside a raw value and produces the
// coerced Go value. The result is three-way: present reports whether a value
// (possibly null) was produced at all, so callers can distinguish "coerced
// null" from "nothing provided" when assembling defaults and argument maps.
//
// Coercion fails fast: the first failure anywhere in a nested value is the
// one and only error for the whole value. Elements and fields are visited in
// deterministic order (list order, declared field order) so the surfaced
// failure is stable.
func coerceValue(s *schema.Schema, t *schema.TypeRef, value rawValue) (coerced any, present bool, err error) {
	if t.IsNonNull() {
		if value.absent() || value.isNull() {
			return nil, false, fmt.Errorf("expected non-null value of type %s, got %s",
				schema.RenderTypeRef(t), renderRaw(value))
		}
		return coerceValue(s, t.Unwrap(), value)
	}

	if value.absent() {
		return nil, false, nil
	}
	if value.isNull() {
		return nil, true, nil
	}

	// Bound variables referenced from literals were coerced during binding;
	// they pass through untouched.
	if pc, ok := value.(preCoercedValue); ok {
		return pc.v, true, nil
	}

	if t.IsList() {
		return coerceListValue(s, t, value)
	}

	named := s.Types[t.Named]
	if named == nil {
		return nil, false, fmt.Errorf("unknown type %s", t.Named)
	}

	switch named.Kind {
	case schema.TypeKindInputObject:
		return coerceInputObjectValue(s, named, value)
	case schema.TypeKindScalar, schema.TypeKindEnum:
		v, err := value.leaf(named)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
	return nil, false, fmt.Errorf("%s is not an input type", named.Name)
}

func coerceListValue(s *schema.Schema, t *schema.TypeRef, value rawValue) (any, bool, error) {
	inner := t.Unwrap()

	items, ok := value.asList()
	if !ok {
		// A non-list value coerces as a list of one.
		v, _, err := coerceValue(s, inner, value)
		if err != nil {
			return nil, false, err
		}
		return []any{v}, true, nil
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		v, _, err := coerceValue(s, inner, item)
		if err != nil {
			return nil, false, err
		}
		out = append(out, v)
	}
	return out, true, nil
}

// coerceInputObjectValue assembles an input object in declared field order.
// Missing keys fall back to the field default, coerced at this level; fields
// with neither key nor default recurse as absent so a Non-Null field type
// fails exactly like an explicit null would. Unknown keys in the incoming
// value are ignored; rejecting them is a validation concern, not coercion.
func coerceInputObjectValue(s *schema.Schema, t *schema.Type, value rawValue) (any, bool, error) {
	obj, ok := value.asObject()
	if !ok {
		return nil, false, fmt.Errorf("expected object value of type %s, got %s", t.Name, renderRaw(value))
	}

	out := make(map[string]any, len(t.InputFields))
	for _, field := range t.InputFields {
		fieldValue, hasKey := obj.field(field.Name)
		var raw rawValue
		switch {
		case hasKey:
			raw = fieldValue
		case field.DefaultValue != nil:
			raw = newLiteralValue(field.DefaultValue, nil)
		case field.GoDefault != nil:
			raw = goValue{field.GoDefault}
		default:
			raw = noValue{}
		}
		v, present, err := coerceValue(s, field.Type, raw)
		if err != nil {
			return nil, false, err
		}
		if present {
			out[field.Name] = v
		}
	}
	return out, true, nil
}
