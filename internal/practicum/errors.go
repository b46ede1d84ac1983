package practicum

import "fmt"

// TransportError wraps a network-level failure: connection refused, timeout,
// DNS resolution and the like.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("homework API unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIStatusError reports a non-200 response. It carries the request
// parameters for diagnostics.
type APIStatusError struct {
	Code     int
	FromDate int64
}

func (e *APIStatusError) Error() string {
	return fmt.Sprintf("homework API returned status %d (from_date=%d)", e.Code, e.FromDate)
}

// MalformedResponseError reports a 200 response whose body is not valid JSON.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("homework API response is not valid JSON: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// ShapeKind classifies a response-shape violation.
type ShapeKind string

const (
	ShapeNotObject    ShapeKind = "not-an-object"
	ShapeMissingField ShapeKind = "missing-field"
	ShapeWrongType    ShapeKind = "wrong-type"
)

// ShapeError reports a well-formed JSON body that does not match the
// expected response envelope.
type ShapeError struct {
	Kind  ShapeKind
	Field string
}

func (e *ShapeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unexpected response shape: %s", e.Kind)
	}
	return fmt.Sprintf("unexpected response shape: %s %q", e.Kind, e.Field)
}
