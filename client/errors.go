package client

import (
	"fmt"
)

// loadFailed is the message shown when the backend gives no better one.
const loadFailed = "Error al cargar los datos"

// TransportError reports a request that failed on the network or was
// answered with a non-2xx status.
type TransportError struct {
	Resource   string
	StatusCode int
	// Message is the error text sent by the backend, if any.
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (HTTP %d)", loadFailed, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", loadFailed, e.Err)
	default:
		return loadFailed
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaError reports a response body that is not an array of the expected
// record shape. Index is the offending element, or -1 for the body itself.
type SchemaError struct {
	Resource string
	Index    int
	Err      error
}

func (e *SchemaError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("respuesta inválida de /api/%s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("respuesta inválida de /api/%s (registro %d): %v", e.Resource, e.Index, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
