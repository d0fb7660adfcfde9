package schema

import (
	"fmt"
	"math"
	"strconv"

	language "github.com/knowbody/graphql-js/internal/language"
)

var stringType = &Type{
	Name:         "String",
	Kind:         TypeKindScalar,
	Description:  "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
	Serialize:    coerceString,
	ParseValue:   coerceString,
	ParseLiteral: parseStringLiteral,
}

var intType = &Type{
	Name:         "Int",
	Kind:         TypeKindScalar,
	Description:  "The `Int` scalar type represents non-fractional signed whole numeric values.",
	Serialize:    coerceInt,
	ParseValue:   coerceInt,
	ParseLiteral: parseIntLiteral,
}

var floatType = &Type{
	Name:         "Float",
	Kind:         TypeKindScalar,
	Description:  "The `Float` scalar type represents signed double-precision fractional values.",
	Serialize:    coerceFloat,
	ParseValue:   coerceFloat,
	ParseLiteral: parseFloatLiteral,
}

var booleanType = &Type{
	Name:         "Boolean",
	Kind:         TypeKindScalar,
	Description:  "The `Boolean` scalar type represents `true` or `false`.",
	Serialize:    coerceBoolean,
	ParseValue:   coerceBoolean,
	ParseLiteral: parseBooleanLiteral,
}

var idType = &Type{
	Name:         "ID",
	Kind:         TypeKindScalar,
	Description:  "The `ID` scalar type represents a unique identifier, often used to refetch an object or as a key for caching.",
	Serialize:    coerceID,
	ParseValue:   coerceID,
	ParseLiteral: parseIDLiteral,
}

var includeDirective = &Directive{
	Name:        "include",
	Description: "Directs the executor to include this field or fragment only when the `if` argument is true.",
	Arguments: []*InputValue{
		{
			Name:        "if",
			Description: "Included when true.",
			Type:        NonNullType(NamedType("Boolean")),
		},
	},
	Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
}

var skipDirective = &Directive{
	Name:        "skip",
	Description: "Directs the executor to skip this field or fragment when the `if` argument is true.",
	Arguments: []*InputValue{
		{
			Name:        "if",
			Description: "Skipped when true.",
			Type:        NonNullType(NamedType("Boolean")),
		},
	},
	Locations: []string{"FIELD", "FRAGMENT_SPREAD", "INLINE_FRAGMENT"},
}

// Int is 32-bit per the GraphQL spec.
func coerceInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent %d", v)
		}
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent %d", v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt32 || v > math.MaxInt32 {
			return nil, fmt.Errorf("Int cannot represent %v", v)
		}
		return int(v), nil
	case float32:
		return coerceInt(float64(v))
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return coerceInt(n)
		}
	}
	return nil, fmt.Errorf("Int cannot represent %v (%T)", value, value)
}

func parseIntLiteral(node *language.Value) (any, error) {
	if node.Kind != language.IntValue {
		return nil, fmt.Errorf("Int cannot represent %s", node.String())
	}
	n, err := strconv.Atoi(node.Raw)
	if err != nil {
		return nil, fmt.Errorf("Int cannot represent %s", node.Raw)
	}
	return coerceInt(n)
}

func coerceFloat(value any) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, nil
		}
	}
	return nil, fmt.Errorf("Float cannot represent %v (%T)", value, value)
}

func parseFloatLiteral(node *language.Value) (any, error) {
	if node.Kind != language.IntValue && node.Kind != language.FloatValue {
		return nil, fmt.Errorf("Float cannot represent %s", node.String())
	}
	f, err := strconv.ParseFloat(node.Raw, 64)
	if err != nil {
		return nil, fmt.Errorf("Float cannot represent %s", node.Raw)
	}
	return f, nil
}

func coerceString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int32, int64, float32, float64:
		return fmt.Sprint(v), nil
	}
	return nil, fmt.Errorf("String cannot represent %v (%T)", value, value)
}

func parseStringLiteral(node *language.Value) (any, error) {
	if node.Kind != language.StringValue && node.Kind != language.BlockValue {
		return nil, fmt.Errorf("String cannot represent %s", node.String())
	}
	return node.Raw, nil
}

func coerceBoolean(value any) (any, error) {
	if v, ok := value.(bool); ok {
		return v, nil
	}
	return nil, fmt.Errorf("Boolean cannot represent %v (%T)", value, value)
}

func parseBooleanLiteral(node *language.Value) (any, error) {
	if node.Kind != language.BooleanValue {
		return nil, fmt.Errorf("Boolean cannot represent %s", node.String())
	}
	return node.Raw == "true", nil
}

func coerceID(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10), nil
		}
	}
	return nil, fmt.Errorf("ID cannot represent %v (%T)", value, value)
}

func parseIDLiteral(node *language.Value) (any, error) {
	switch node.Kind {
	case language.StringValue, language.IntValue:
		return node.Raw, nil
	}
	return nil, fmt.Errorf("ID cannot represent %s", node.String())
}
