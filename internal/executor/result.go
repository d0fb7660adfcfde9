package executor

// Path locates a value in the response tree: field names and list indexes.
type Path []PathElement

type PathElement any

// Location is a 1-indexed position in the query source text.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError is a located execution or coercion error.
type GraphQLError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
	Path      Path       `json:"path,omitempty"`
}

func (e GraphQLError) Error() string {
	return e.Message
}

// ExecutionResult is the outcome of executing one GraphQL request. Data is
// nil (serialized as JSON null) when variable binding failed and no resolver
// ran.
type ExecutionResult struct {
	Data   any            `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}
