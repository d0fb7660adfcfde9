// Package schema holds the type descriptor model: named types (scalars,
// enums, input objects, objects) and the List/NonNull wrapper references that
// compose around them. Descriptors are built once and shared read-only by
// every coercion and execution call.
package schema

import (
	language "github.com/knowbody/graphql-js/internal/language"
)

// Schema is the complete type graph for one service.
type Schema struct {
	QueryType    string
	MutationType string
	Types        map[string]*Type // all named types keyed by name
	Directives   map[string]*Directive
}

// NewSchema returns an empty schema preloaded with the builtin scalar types
// and the @skip/@include directives.
func NewSchema() *Schema {
	s := &Schema{
		Types:      make(map[string]*Type),
		Directives: make(map[string]*Directive),
	}
	s.AddType(stringType).
		AddType(intType).
		AddType(floatType).
		AddType(booleanType).
		AddType(idType)
	s.AddDirective(includeDirective).
		AddDirective(skipDirective)
	return s
}

func (s *Schema) AddType(t *Type) *Schema {
	s.Types[t.Name] = t
	return s
}

func (s *Schema) AddDirective(d *Directive) *Schema {
	s.Directives[d.Name] = d
	return s
}

func (s *Schema) SetQueryType(name string) *Schema    { s.QueryType = name; return s }
func (s *Schema) SetMutationType(name string) *Schema { s.MutationType = name; return s }

// GetQueryType returns the root query type (nil if absent).
func (s *Schema) GetQueryType() *Type { return s.Types[s.QueryType] }

// GetMutationType returns the root mutation type (nil if absent).
func (s *Schema) GetMutationType() *Type { return s.Types[s.MutationType] }

// TypeKind represents the kind of a named GraphQL type.
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

// SerializeFn converts an internal leaf value into a JSON-safe output value.
type SerializeFn func(value any) (any, error)

// ParseValueFn coerces a JSON-sourced raw value into the leaf's internal
// representation, rejecting values that cannot be represented.
type ParseValueFn func(value any) (any, error)

// ParseLiteralFn coerces a literal AST value node into the leaf's internal
// representation. Semantics match ParseValueFn; only the source shape differs
// (literal enum names are bare identifiers, literal ints are token text, ...).
type ParseLiteralFn func(node *language.Value) (any, error)

// Type is a named GraphQL type. Fields are populated per Kind; the coercion
// hooks are set for scalars only.
type Type struct {
	Name        string
	Kind        TypeKind
	Description string

	Fields      []*Field      // OBJECT
	EnumValues  []*EnumValue  // ENUM, declaration order
	InputFields []*InputValue // INPUT_OBJECT, declaration order

	Serialize    SerializeFn    // SCALAR
	ParseValue   ParseValueFn   // SCALAR
	ParseLiteral ParseLiteralFn // SCALAR
}

func NewType(name string, kind TypeKind) *Type {
	return &Type{Name: name, Kind: kind}
}

func (t *Type) AddField(f *Field) *Type           { t.Fields = append(t.Fields, f); return t }
func (t *Type) AddInputField(v *InputValue) *Type { t.InputFields = append(t.InputFields, v); return t }
func (t *Type) AddEnumValue(v *EnumValue) *Type   { t.EnumValues = append(t.EnumValues, v); return t }

// FieldByName returns the declared output field, or nil.
func (t *Type) FieldByName(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// InputFieldByName returns the declared input field, or nil.
func (t *Type) InputFieldByName(name string) *InputValue {
	for _, f := range t.InputFields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// EnumValueByName returns the declared enum value for a bare name, or nil.
func (t *Type) EnumValueByName(name string) *EnumValue {
	for _, v := range t.EnumValues {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// EnumNameForValue maps an internal enum value back to its declared name.
func (t *Type) EnumNameForValue(value any) (string, bool) {
	for _, v := range t.EnumValues {
		if v.Value == value {
			return v.Name, true
		}
	}
	return "", false
}

// Field is an output field on an object type.
type Field struct {
	Name        string
	Description string
	Type        *TypeRef
	Arguments   []*InputValue // declaration order
}

func NewField(name string, typeRef *TypeRef) *Field {
	return &Field{Name: name, Type: typeRef}
}

func (f *Field) AddArgument(v *InputValue) *Field {
	f.Arguments = append(f.Arguments, v)
	return f
}

// InputValue declares an input-object field or a field/directive argument.
// DefaultValue, when present, is the literal AST node from the schema source.
// GoDefault carries a native Go default for programmatically built schemas;
// DefaultValue wins when both are set.
type InputValue struct {
	Name         string
	Description  string
	Type         *TypeRef
	DefaultValue *language.Value
	GoDefault    any
}

func NewInputValue(name string, typeRef *TypeRef) *InputValue {
	return &InputValue{Name: name, Type: typeRef}
}

func (v *InputValue) SetDefault(node *language.Value) *InputValue {
	v.DefaultValue = node
	return v
}

func (v *InputValue) SetGoDefault(value any) *InputValue {
	v.GoDefault = value
	return v
}

// EnumValue is a single declared enum member. Value is the internal
// representation handed to resolvers; it defaults to the member name.
type EnumValue struct {
	Name        string
	Description string
	Value       any
}

// Directive declares an executable directive and its arguments.
type Directive struct {
	Name        string
	Description string
	Locations   []string
	Arguments   []*InputValue // declaration order
}

// TypeRef is a reference to a type: a named leaf or a List/NonNull wrapper
// around an inner reference. The variant is closed; the value coercer matches
// on Kind exhaustively.
type TypeRef struct {
	Kind   TypeRefKind
	OfType *TypeRef // List and NonNull
	Named  string   // named types
}

type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func NamedType(name string) *TypeRef  { return &TypeRef{Kind: TypeRefKindNamed, Named: name} }
func ListType(t *TypeRef) *TypeRef    { return &TypeRef{Kind: TypeRefKindList, OfType: t} }
func NonNullType(t *TypeRef) *TypeRef { return &TypeRef{Kind: TypeRefKindNonNull, OfType: t} }

// IsNonNull reports whether the reference's outermost wrapper is Non-Null.
func (t *TypeRef) IsNonNull() bool { return t != nil && t.Kind == TypeRefKindNonNull }

// IsList reports whether the reference's outermost wrapper is a List.
func (t *TypeRef) IsList() bool { return t != nil && t.Kind == TypeRefKindList }

// Unwrap strips one wrapper layer if present, else returns the reference.
func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

// NamedTypeName returns the innermost named type.
func (t *TypeRef) NamedTypeName() string {
	current := t
	for current != nil {
		if current.Named != "" {
			return current.Named
		}
		current = current.OfType
	}
	return ""
}

// TypeRefFromAST converts a parsed type expression into a TypeRef.
func TypeRefFromAST(t *language.Type) *TypeRef {
	if t == nil {
		return nil
	}
	if t.NonNull {
		return NonNullType(TypeRefFromAST(&language.Type{NamedType: t.NamedType, Elem: t.Elem}))
	}
	if t.NamedType != "" {
		return NamedType(t.NamedType)
	}
	if t.Elem != nil {
		return ListType(TypeRefFromAST(t.Elem))
	}
	return nil
}
