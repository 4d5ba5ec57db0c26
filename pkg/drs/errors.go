package drs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURI means the endpoint URI or object identifier cannot be parsed.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrInvalidObjectData means an outgoing payload failed schema validation.
	// No network call is made when this is returned.
	ErrInvalidObjectData = errors.New("object data could not be validated against API schema")
	// ErrInvalidResponse means an inbound body, success or error, failed schema
	// validation. A 2xx status alone does not make a response valid.
	ErrInvalidResponse = errors.New("response could not be validated against API schema")
	// ErrConnectionFailure normalizes transport-level failures (refused
	// connection, DNS, socket errors).
	ErrConnectionFailure = errors.New("could not connect to API endpoint")
)

// APIError is a well-formed error reported by the DRS instance itself. It is
// distinct from the sentinel errors above: the server completed the exchange
// and rejected the request.
type APIError struct {
	Msg        string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("DRS instance returned %d: %s", e.StatusCode, e.Msg)
}
