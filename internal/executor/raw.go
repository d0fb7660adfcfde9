package executor

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// rawValue is the uniform view over the input representations the value
// coercer accepts: JSON-sourced variable values, literal AST nodes, and
// native Go defaults on programmatically built schemas. The recursive
// algorithm is identical for all of them; only shape probing and leaf parsing
// differ.
type rawValue interface {
	// absent reports that no value was provided at all, distinct from an
	// explicit null.
	absent() bool
	isNull() bool
	// asList returns the elements when the value is list-shaped.
	asList() ([]rawValue, bool)
	// asObject returns a field accessor when the value is object-shaped.
	asObject() (rawObject, bool)
	// leaf parses the value through the given scalar or enum type.
	leaf(t *schema.Type) (any, error)
	// render writes the value's canonical JSON text: `undefined` for absent,
	// `null` for null, otherwise compact JSON with object keys in their
	// original order.
	render(b *strings.Builder)
}

type rawObject interface {
	field(name string) (rawValue, bool)
}

func renderRaw(v rawValue) string {
	var b strings.Builder
	v.render(&b)
	return b.String()
}

// ---- absent marker ----

type noValue struct{}

func (noValue) absent() bool                     { return true }
func (noValue) isNull() bool                     { return false }
func (noValue) asList() ([]rawValue, bool)       { return nil, false }
func (noValue) asObject() (rawObject, bool)      { return nil, false }
func (noValue) leaf(t *schema.Type) (any, error) { return nil, fmt.Errorf("no value") }
func (noValue) render(b *strings.Builder)        { b.WriteString("undefined") }

// ---- JSON-sourced variable values ----

// jsonValue wraps a gjson result over the caller's raw variables JSON. The
// original bytes are kept so object key order survives into error rendering.
type jsonValue struct {
	r gjson.Result
}

func (v jsonValue) absent() bool { return !v.r.Exists() }

func (v jsonValue) isNull() bool { return v.r.Type == gjson.Null && v.r.Exists() }

func (v jsonValue) asList() ([]rawValue, bool) {
	if !v.r.IsArray() {
		return nil, false
	}
	var items []rawValue
	v.r.ForEach(func(_, item gjson.Result) bool {
		items = append(items, jsonValue{item})
		return true
	})
	return items, true
}

func (v jsonValue) asObject() (rawObject, bool) {
	if !v.r.IsObject() {
		return nil, false
	}
	return jsonObject{v.r}, true
}

func (v jsonValue) leaf(t *schema.Type) (any, error) {
	if t.Kind == schema.TypeKindEnum {
		name, ok := v.r.Value().(string)
		if !ok {
			return nil, fmt.Errorf("enum %s cannot represent %s", t.Name, v.r.Raw)
		}
		ev := t.EnumValueByName(name)
		if ev == nil {
			return nil, fmt.Errorf("enum %s has no value %q", t.Name, name)
		}
		return ev.Value, nil
	}
	return t.ParseValue(v.r.Value())
}

func (v jsonValue) render(b *strings.Builder) {
	if !v.r.Exists() {
		b.WriteString("undefined")
		return
	}
	// @ugly strips all whitespace while leaving key order intact.
	b.WriteString(gjson.Get(v.r.Raw, "@ugly").Raw)
}

type jsonObject struct {
	r gjson.Result
}

func (o jsonObject) field(name string) (rawValue, bool) {
	f := o.r.Get(name)
	if !f.Exists() {
		return nil, false
	}
	return jsonValue{f}, true
}

// ---- literal AST values ----

// newLiteralValue wraps a literal AST node. Variable references dereference to
// the already-bound coerced variable value; unbound references behave as if no
// value was supplied.
func newLiteralValue(node *language.Value, variableValues map[string]any) rawValue {
	if node == nil {
		return noValue{}
	}
	if node.Kind == language.Variable {
		if v, ok := variableValues[node.Raw]; ok {
			return preCoercedValue{v}
		}
		return noValue{}
	}
	return literalValue{node: node, variableValues: variableValues}
}

type literalValue struct {
	node           *language.Value
	variableValues map[string]any
}

func (v literalValue) absent() bool { return false }

func (v literalValue) isNull() bool { return v.node.Kind == language.NullValue }

func (v literalValue) asList() ([]rawValue, bool) {
	if v.node.Kind != language.ListValue {
		return nil, false
	}
	items := make([]rawValue, len(v.node.Children))
	for i, c := range v.node.Children {
		items[i] = newLiteralValue(c.Value, v.variableValues)
	}
	return items, true
}

func (v literalValue) asObject() (rawObject, bool) {
	if v.node.Kind != language.ObjectValue {
		return nil, false
	}
	return literalObject{fields: v.node.Children, variableValues: v.variableValues}, true
}

func (v literalValue) leaf(t *schema.Type) (any, error) {
	if t.Kind == schema.TypeKindEnum {
		if v.node.Kind != language.EnumValue {
			return nil, fmt.Errorf("enum %s cannot represent %s", t.Name, v.node.String())
		}
		ev := t.EnumValueByName(v.node.Raw)
		if ev == nil {
			return nil, fmt.Errorf("enum %s has no value %q", t.Name, v.node.Raw)
		}
		return ev.Value, nil
	}
	return t.ParseLiteral(v.node)
}

func (v literalValue) render(b *strings.Builder) {
	renderLiteralJSON(b, v.node)
}

// renderLiteralJSON writes the JSON equivalent of a constant literal, object
// fields in source order. Enum names render as quoted strings.
func renderLiteralJSON(b *strings.Builder, node *language.Value) {
	switch node.Kind {
	case language.IntValue, language.FloatValue, language.BooleanValue:
		b.WriteString(node.Raw)
	case language.NullValue:
		b.WriteString("null")
	case language.StringValue, language.BlockValue, language.EnumValue:
		b.WriteString(strconv.Quote(node.Raw))
	case language.ListValue:
		b.WriteByte('[')
		for i, c := range node.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			renderLiteralJSON(b, c.Value)
		}
		b.WriteByte(']')
	case language.ObjectValue:
		b.WriteByte('{')
		for i, c := range node.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(c.Name))
			b.WriteByte(':')
			renderLiteralJSON(b, c.Value)
		}
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
}

type literalObject struct {
	fields         language.ChildValueList
	variableValues map[string]any
}

func (o literalObject) field(name string) (rawValue, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return newLiteralValue(f.Value, o.variableValues), true
		}
	}
	return nil, false
}

// ---- already-coerced values ----

// preCoercedValue carries a value that went through coercion before (a bound
// variable referenced from a literal). The coercer returns it as-is after the
// nullability check; it is never probed for shape.
type preCoercedValue struct {
	v any
}

func (v preCoercedValue) absent() bool                     { return false }
func (v preCoercedValue) isNull() bool                     { return v.v == nil }
func (v preCoercedValue) asList() ([]rawValue, bool)       { return nil, false }
func (v preCoercedValue) asObject() (rawObject, bool)      { return nil, false }
func (v preCoercedValue) leaf(t *schema.Type) (any, error) { return v.v, nil }

func (v preCoercedValue) render(b *strings.Builder) {
	data, err := json.Marshal(v.v)
	if err != nil {
		b.WriteString("null")
		return
	}
	b.Write(data)
}

// ---- native Go defaults (InputValue.GoDefault) ----

type goValue struct {
	v any
}

func (v goValue) absent() bool { return false }

func (v goValue) isNull() bool { return v.v == nil }

func (v goValue) asList() ([]rawValue, bool) {
	items, ok := v.v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]rawValue, len(items))
	for i, item := range items {
		out[i] = goValue{item}
	}
	return out, true
}

func (v goValue) asObject() (rawObject, bool) {
	m, ok := v.v.(map[string]any)
	if !ok {
		return nil, false
	}
	return goObject{m}, true
}

func (v goValue) leaf(t *schema.Type) (any, error) {
	if t.Kind == schema.TypeKindEnum {
		name, ok := v.v.(string)
		if !ok {
			return nil, fmt.Errorf("enum %s cannot represent %v", t.Name, v.v)
		}
		ev := t.EnumValueByName(name)
		if ev == nil {
			return nil, fmt.Errorf("enum %s has no value %q", t.Name, name)
		}
		return ev.Value, nil
	}
	return t.ParseValue(v.v)
}

func (v goValue) render(b *strings.Builder) {
	data, err := json.Marshal(v.v)
	if err != nil {
		b.WriteString("null")
		return
	}
	b.Write(data)
}

type goObject struct {
	m map[string]any
}

func (o goObject) field(name string) (rawValue, bool) {
	v, ok := o.m[name]
	if !ok {
		return nil, false
	}
	return goValue{v}, true
}
