package services

import "errors"

// Kind classifies an operation failure. Every failure is terminal for the
// call; the HTTP boundary converts the kind into a status code and a
// {success:false, error:<message>} body.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindPermission
	KindInternal
)

type OpError struct {
	Kind    Kind
	Message string
}

func (e *OpError) Error() string {
	return e.Message
}

func ValidationError(message string) *OpError {
	return &OpError{Kind: KindValidation, Message: message}
}

func ConflictError(message string) *OpError {
	return &OpError{Kind: KindConflict, Message: message}
}

func NotFoundError(message string) *OpError {
	return &OpError{Kind: KindNotFound, Message: message}
}

func PermissionError(message string) *OpError {
	return &OpError{Kind: KindPermission, Message: message}
}

func InternalError(err error) *OpError {
	return &OpError{Kind: KindInternal, Message: err.Error()}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindInternal
}
