package domain

import (
	"errors"
	"strings"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateTransaction = errors.New("Transaction already recorded")
var ErrNoHistory = errors.New("No historical data found")
var ErrLedgerTampered = errors.New("Ledger chain does not verify")

// ValidationError carries every problem found in a request.
type ValidationError struct {
	Problems []string
}

func NewValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// ValidationProblems returns the problem list when err is a ValidationError.
func ValidationProblems(err error) []string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Problems
	}
	if err == nil {
		return nil
	}
	return []string{err.Error()}
}
