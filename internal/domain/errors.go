package domain

// DomainError is a coded error surfaced by the query layer.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "resource not found")
	ErrNotReady     = NewDomainError("NOT_READY", "catalog is still loading")
	ErrDuplicate    = NewDomainError("DUPLICATE", "record already exists")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "invalid input provided")
)
