// Package executor implements the input-coercion core of a GraphQL runtime
// (variable binding and argument resolution over a recursively composed type
// system) plus a small serial executor that hosts it.
//
// # Value coercion
//
// coerceValue walks a schema.TypeRef alongside a raw value and produces the
// coerced Go value or fails. It accepts two source representations through a
// uniform shape abstraction (rawValue): JSON-sourced variable values, kept as
// raw bytes and traversed with gjson so object key order survives into error
// messages, and literal AST nodes from the parsed query. The algorithm:
//
//   - Non-Null: an absent or null value fails, referencing the Non-Null
//     type's own rendered name; otherwise recurse into the inner type.
//   - Nullable + absent: "no value", distinct from coerced null. Callers
//     interpret it as "use default or omit".
//   - Nullable + null: coerced null.
//   - List: list-shaped values coerce element-wise in order; any other value
//     coerces as a one-element list (single-to-list promotion).
//   - Input object: fields assemble in declared order; missing keys take the
//     field default; fields with neither fail their Non-Null check exactly
//     like an explicit null. Unknown keys are ignored.
//   - Leaf: delegate to the scalar's ParseValue/ParseLiteral or the enum's
//     declared values.
//
// Within one value the first failure wins: nested coercion short-circuits and
// the whole value reports a single error. Deterministic left-to-right /
// declaration order is therefore an observable contract, not an optimization.
//
// # Variable binding
//
// coerceVariableValues resolves each declared variable against the supplied
// variables JSON (or the declaration's default literal when absent). Unlike
// nested coercion, the binder attempts every definition and accumulates one
// located error per failing variable, with the exact message shape
//
//	Variable $name expected value of type T but got: <value>.
//
// where the value renders as `undefined` when absent, `null` for null, and
// compact JSON in original key order otherwise. Any binding error aborts the
// request before resolvers run, producing {data: null, errors: [...]}.
//
// # Argument resolution
//
// coerceArgumentValues resolves a field's or directive's declared arguments
// from query literals. Variable references substitute the already-bound
// coerced value without re-coercion; omitted arguments fall back to schema
// defaults; arguments resolving to no value stay out of the map so resolvers
// observe absence rather than null.
//
// # Execution
//
// The executor itself is deliberately small and serial: coercion is a pure,
// synchronous function of (type, value, variables), and resolver concurrency
// or batching belongs to the hosting engine. Field collection handles
// fragments and @skip/@include (whose `if` arguments resolve through the same
// argument coercion), and value completion covers Non-Null propagation,
// lists, leaf serialization and nested objects.
package executor
