package schema

import (
	"fmt"
	"strconv"

	language "github.com/knowbody/graphql-js/internal/language"
)

// BuildOption customizes schema construction.
type BuildOption func(*buildOptions)

type buildOptions struct {
	scalars map[string]*Type
}

// WithScalar registers coercion hooks for a custom scalar declared in the SDL.
// Scalars without registered hooks pass values through unchanged.
func WithScalar(name string, serialize SerializeFn, parseValue ParseValueFn, parseLiteral ParseLiteralFn) BuildOption {
	return func(o *buildOptions) {
		o.scalars[name] = &Type{
			Name:         name,
			Kind:         TypeKindScalar,
			Serialize:    serialize,
			ParseValue:   parseValue,
			ParseLiteral: parseLiteral,
		}
	}
}

// BuildFromSDL parses an SDL document and builds the type graph from it.
// Only the kinds this runtime executes are materialized: objects, input
// objects, enums and scalars. The builtin scalars and @skip/@include are
// always present.
func BuildFromSDL(sdl string, opts ...BuildOption) (*Schema, error) {
	doc, err := language.ParseSchema("schema.graphql", sdl)
	if err != nil {
		return nil, err
	}

	o := buildOptions{scalars: make(map[string]*Type)}
	for _, opt := range opts {
		opt(&o)
	}

	s := NewSchema()
	for _, def := range doc.Definitions {
		switch def.Kind {
		case language.Object:
			s.AddType(buildObject(def))
		case language.InputObject:
			s.AddType(buildInputObject(def))
		case language.Enum:
			s.AddType(buildEnum(def))
		case language.Scalar:
			if custom, ok := o.scalars[def.Name]; ok {
				custom.Description = def.Description
				s.AddType(custom)
			} else {
				s.AddType(buildPassthroughScalar(def))
			}
		default:
			return nil, fmt.Errorf("unsupported definition kind %s for %s", def.Kind, def.Name)
		}
	}
	for _, dir := range doc.Directives {
		d := &Directive{Name: dir.Name, Description: dir.Description}
		for _, loc := range dir.Locations {
			d.Locations = append(d.Locations, string(loc))
		}
		for _, arg := range dir.Arguments {
			d.Arguments = append(d.Arguments, buildInputValue(arg.Name, arg.Description, arg.Type, arg.DefaultValue))
		}
		s.AddDirective(d)
	}

	// Root types: explicit schema definition wins, else conventional names.
	if len(doc.Schema) > 0 {
		for _, op := range doc.Schema[0].OperationTypes {
			switch op.Operation {
			case language.Query:
				s.SetQueryType(op.Type)
			case language.Mutation:
				s.SetMutationType(op.Type)
			}
		}
	} else {
		if _, ok := s.Types["Query"]; ok {
			s.SetQueryType("Query")
		}
		if _, ok := s.Types["Mutation"]; ok {
			s.SetMutationType("Mutation")
		}
	}
	return s, nil
}

func buildObject(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindObject)
	t.Description = def.Description
	for _, fd := range def.Fields {
		f := NewField(fd.Name, TypeRefFromAST(fd.Type))
		f.Description = fd.Description
		for _, arg := range fd.Arguments {
			f.AddArgument(buildInputValue(arg.Name, arg.Description, arg.Type, arg.DefaultValue))
		}
		t.AddField(f)
	}
	return t
}

func buildInputObject(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindInputObject)
	t.Description = def.Description
	for _, fd := range def.Fields {
		t.AddInputField(buildInputValue(fd.Name, fd.Description, fd.Type, fd.DefaultValue))
	}
	return t
}

func buildInputValue(name, description string, typeExpr *language.Type, defaultValue *language.Value) *InputValue {
	v := NewInputValue(name, TypeRefFromAST(typeExpr))
	v.Description = description
	if defaultValue != nil {
		v.SetDefault(defaultValue)
	}
	return v
}

func buildEnum(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindEnum)
	t.Description = def.Description
	for _, ev := range def.EnumValues {
		t.AddEnumValue(&EnumValue{Name: ev.Name, Description: ev.Description, Value: ev.Name})
	}
	return t
}

func buildPassthroughScalar(def *language.Definition) *Type {
	t := NewType(def.Name, TypeKindScalar)
	t.Description = def.Description
	t.Serialize = func(v any) (any, error) { return v, nil }
	t.ParseValue = func(v any) (any, error) { return v, nil }
	t.ParseLiteral = func(node *language.Value) (any, error) { return LiteralToGo(node), nil }
	return t
}

// LiteralToGo converts a constant literal AST node into a plain Go value.
// Variable references convert to nil.
func LiteralToGo(node *language.Value) any {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case language.IntValue:
		n, _ := strconv.Atoi(node.Raw)
		return n
	case language.FloatValue:
		f, _ := strconv.ParseFloat(node.Raw, 64)
		return f
	case language.StringValue, language.BlockValue, language.EnumValue:
		return node.Raw
	case language.BooleanValue:
		return node.Raw == "true"
	case language.NullValue:
		return nil
	case language.ListValue:
		out := make([]any, len(node.Children))
		for i, c := range node.Children {
			out[i] = LiteralToGo(c.Value)
		}
		return out
	case language.ObjectValue:
		m := make(map[string]any, len(node.Children))
		for _, c := range node.Children {
			m[c.Name] = LiteralToGo(c.Value)
		}
		return m
	}
	return nil
}
