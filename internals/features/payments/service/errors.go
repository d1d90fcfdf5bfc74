package service

// FailureKind classifies engine failures for the HTTP layer.
type FailureKind int

const (
	// FailureNotFound: entity/state mismatch, e.g. payment not in processing.
	FailureNotFound FailureKind = iota
	// FailureValidation: malformed or unsupported input reached the engine.
	FailureValidation
	// FailureConflict: duplicate in-flight payment.
	FailureConflict
	// FailureUpstream: gateway/mailer call failed or returned a failure payload.
	FailureUpstream
	// FailurePersistence: a guarded write affected zero rows after its
	// precondition passed. Reported like not-found, the state changed
	// underneath the caller.
	FailurePersistence
	// FailureInternal: unexpected store or transport error.
	FailureInternal
)

// EngineError is the one failure type the lifecycle engine returns. Message
// is always safe to show to the caller; Code carries the upstream error code
// when one exists; Data carries extra payload (e.g. the existing reference on
// a conflict).
type EngineError struct {
	Kind    FailureKind
	Message string
	Code    string
	Data    interface{}
}

func (e *EngineError) Error() string { return e.Message }

// HTTPStatus maps the failure to a response status. Everything except
// internal errors surfaces as a 400 to match the API's established contract.
func (e *EngineError) HTTPStatus() int {
	if e.Kind == FailureInternal {
		return 500
	}
	return 400
}

func notFoundErr(message string) *EngineError {
	return &EngineError{Kind: FailureNotFound, Message: message}
}

func validationErr(message string) *EngineError {
	return &EngineError{Kind: FailureValidation, Message: message}
}

func conflictErr(message string, data interface{}) *EngineError {
	return &EngineError{Kind: FailureConflict, Message: message, Data: data}
}

func upstreamErr(message, code string) *EngineError {
	return &EngineError{Kind: FailureUpstream, Message: message, Code: code}
}

func persistenceErr(message string) *EngineError {
	return &EngineError{Kind: FailurePersistence, Message: message}
}

func internalErr(message string) *EngineError {
	return &EngineError{Kind: FailureInternal, Message: message}
}
