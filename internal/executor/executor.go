package executor

import (
	"context"
	"fmt"
	"reflect"

	language "github.com/knowbody/graphql-js/internal/language"
	schema "github.com/knowbody/graphql-js/internal/schema"
)

// Executor runs GraphQL requests against a schema, resolving fields through
// the injected Runtime.
type Executor struct {
	runtime Runtime
	schema  *schema.Schema
}

func NewExecutor(runtime Runtime, s *schema.Schema) *Executor {
	return &Executor{runtime: runtime, schema: s}
}

// executionState holds the per-request state shared by the recursive walk.
type executionState struct {
	runtime        Runtime
	schema         *schema.Schema
	document       *language.QueryDocument
	variableValues map[string]any
	context        context.Context
	errors         []GraphQLError
}

// ExecuteRequest binds variables and executes the selected operation.
// variablesJSON is the raw JSON text of the variables object (may be nil).
//
// If any variable fails to bind, no resolver runs and the result is
// {data: null, errors: [...]} with one located error per failing variable.
func (e *Executor) ExecuteRequest(
	ctx context.Context,
	document *language.QueryDocument,
	operationName string,
	variablesJSON []byte,
	initialValue any,
) *ExecutionResult {
	operation := getOperation(document, operationName)
	if operation == nil {
		return &ExecutionResult{Errors: []GraphQLError{{Message: "operation not found"}}}
	}

	variableValues, errs := coerceVariableValues(e.schema, operation, variablesJSON)
	if len(errs) > 0 {
		return &ExecutionResult{Data: nil, Errors: errs}
	}

	var rootType *schema.Type
	switch operation.Operation {
	case language.Query:
		rootType = e.schema.GetQueryType()
	case language.Mutation:
		rootType = e.schema.GetMutationType()
	default:
		return &ExecutionResult{Errors: []GraphQLError{{Message: fmt.Sprintf("unsupported operation type: %s", operation.Operation)}}}
	}
	if rootType == nil {
		return &ExecutionResult{Errors: []GraphQLError{{Message: fmt.Sprintf("root type not found for %s operation", operation.Operation)}}}
	}

	state := &executionState{
		runtime:        e.runtime,
		schema:         e.schema,
		document:       document,
		variableValues: variableValues,
		context:        ctx,
	}

	data := executeSelectionSet(state, rootType, operation.SelectionSet, initialValue, Path{})
	if data == nil {
		return &ExecutionResult{Data: nil, Errors: state.errors}
	}
	return &ExecutionResult{Data: data, Errors: state.errors}
}

// executeSelectionSet resolves each collected field serially, in query order.
func executeSelectionSet(state *executionState, objectType *schema.Type, selectionSet language.SelectionSet, objectValue any, path Path) map[string]any {
	groupedFields := collectFields(state, objectType, selectionSet)
	resultMap := make(map[string]any)

	for _, collected := range groupedFields.orderedFields() {
		responseName := collected.ResponseName
		fields := collected.Fields
		fieldPath := appendPath(path, responseName)

		if fields[0].Name == "__typename" {
			resultMap[responseName] = objectType.Name
			continue
		}

		fieldDef := objectType.FieldByName(fields[0].Name)
		if fieldDef == nil {
			state.addError(fmt.Sprintf("Cannot query field '%s' on type '%s'", fields[0].Name, objectType.Name), fieldPath)
			continue
		}

		fieldResult := executeField(state, objectType, objectValue, fieldDef, fields, fieldPath)

		// A Non-Null violation nulls the nearest nullable ancestor. There is
		// no nullable position above the root selection set, so a violation
		// there nulls the entire data object.
		if fieldDef.Type.IsNonNull() && isNullish(fieldResult) {
			return nil
		}

		if isNullish(fieldResult) {
			resultMap[responseName] = nil
		} else {
			resultMap[responseName] = fieldResult
		}
	}

	return resultMap
}

func executeField(state *executionState, objectType *schema.Type, objectValue any, fieldDef *schema.Field, fields []*language.Field, path Path) any {
	argumentValues := coerceArgumentValues(state.schema, fieldDef.Arguments, fields[0].Arguments, state.variableValues)

	resolved, err := state.runtime.ResolveField(state.context, objectType.Name, fieldDef.Name, objectValue, argumentValues)
	if err != nil {
		state.addError(err.Error(), path)
		return nil
	}
	return completeValue(state, fieldDef.Type, fields, resolved, path)
}

// completeValue completes a resolved value against the field's return type.
func completeValue(state *executionState, fieldType *schema.TypeRef, fields []*language.Field, result any, path Path) any {
	if fieldType.IsNonNull() {
		if isNullish(result) {
			if !state.hasErrorAtPath(path) {
				state.addError(fmt.Sprintf("Cannot return null for non-nullable field %s", pathToString(path)), path)
			}
			return nil
		}
		return completeValue(state, fieldType.Unwrap(), fields, result, path)
	}

	if isNullish(result) {
		return nil
	}

	if fieldType.IsList() {
		return completeListValue(state, fieldType, fields, result, path)
	}

	namedType := state.schema.Types[fieldType.Named]
	if namedType == nil {
		state.addError(fmt.Sprintf("Unknown type: %s", fieldType.Named), path)
		return nil
	}

	switch namedType.Kind {
	case schema.TypeKindScalar, schema.TypeKindEnum:
		serialized, err := serializeLeafValue(namedType, result)
		if err != nil {
			state.addError(err.Error(), path)
			return nil
		}
		return serialized
	case schema.TypeKindObject:
		sub := mergeSelectionSets(fields)
		return executeSelectionSet(state, namedType, sub, result, path)
	default:
		state.addError(fmt.Sprintf("Cannot complete value of unexpected type: %s", namedType.Kind), path)
		return nil
	}
}

func completeListValue(state *executionState, listType *schema.TypeRef, fields []*language.Field, result any, path Path) any {
	var items []any
	if direct, ok := result.([]any); ok {
		items = direct
	} else {
		rv := reflect.ValueOf(result)
		if rv.Kind() != reflect.Slice {
			state.addError(fmt.Sprintf("Expected list value, got %T", result), path)
			return nil
		}
		items = make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = rv.Index(i).Interface()
		}
	}

	inner := listType.Unwrap()
	completed := make([]any, len(items))
	for i, item := range items {
		v := completeValue(state, inner, fields, item, appendPath(path, i))
		if inner.IsNonNull() && isNullish(v) {
			// Error already recorded by the inner completion; the list itself
			// becomes null.
			return nil
		}
		completed[i] = v
	}
	return completed
}

func serializeLeafValue(t *schema.Type, value any) (any, error) {
	if t.Kind == schema.TypeKindEnum {
		name, ok := t.EnumNameForValue(value)
		if !ok {
			return nil, fmt.Errorf("enum %s cannot serialize %v", t.Name, value)
		}
		return name, nil
	}
	return t.Serialize(value)
}

// getOperation retrieves the operation from the document.
func getOperation(document *language.QueryDocument, operationName string) *language.OperationDefinition {
	if operationName == "" && len(document.Operations) == 1 {
		return document.Operations[0]
	}
	return document.Operations.ForName(operationName)
}

func (state *executionState) addError(message string, path Path) {
	state.errors = append(state.errors, GraphQLError{Message: message, Path: path})
}

// hasErrorAtPath reports whether an error with the given path already exists.
func (state *executionState) hasErrorAtPath(path Path) bool {
	for _, err := range state.errors {
		if reflect.DeepEqual(err.Path, path) {
			return true
		}
	}
	return false
}

func appendPath(path Path, elem PathElement) Path {
	newPath := make(Path, len(path)+1)
	copy(newPath, path)
	newPath[len(path)] = elem
	return newPath
}

func pathToString(path Path) string {
	result := ""
	for i, elem := range path {
		switch v := elem.(type) {
		case string:
			if i > 0 {
				result += "."
			}
			result += v
		case int:
			result += fmt.Sprintf("[%d]", v)
		}
	}
	return result
}

// mergeSelectionSets merges the sub-selections of a grouped field set.
func mergeSelectionSets(fields []*language.Field) language.SelectionSet {
	var merged language.SelectionSet
	for _, f := range fields {
		merged = append(merged, f.SelectionSet...)
	}
	return merged
}

// isNullish reports nil interfaces and typed nils (map, slice, ptr, ...).
func isNullish(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
