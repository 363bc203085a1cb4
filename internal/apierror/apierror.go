// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NotFound is the standard envelope for missing resources.
func NotFound(recurso string) *APIError {
	return &APIError{Detail: recurso + " não encontrado"}
}

// Forbidden is the standard envelope for authorization failures. The
// message doubles as the user-visible notice the frontend shows before
// sending the user back to their home screen.
func Forbidden() *APIError {
	return &APIError{Detail: "Acesso restrito"}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
