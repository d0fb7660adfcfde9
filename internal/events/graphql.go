package events

import "time"

// GraphQLStart marks the start of one GraphQL operation, after parsing and
// before variable binding.
type GraphQLStart struct {
	Query         string
	OperationName string
	OperationType string
}

// GraphQLFinish carries the operation outcome. Errors covers both binding
// and execution errors.
type GraphQLFinish struct {
	Query         string
	OperationName string
	OperationType string
	Errors        []error
	Duration      time.Duration
}
