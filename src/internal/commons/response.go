package commons

import "github.com/api-sage/stablenet-ledger/src/internal/domain"

const MessageValidationFailed = "validation failed"

type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// ValidationFailedResponse lists every problem carried by a
// *domain.ValidationError.
func ValidationFailedResponse[T any](err error) Response[T] {
	return ErrorResponse[T](MessageValidationFailed, domain.ValidationProblems(err)...)
}
