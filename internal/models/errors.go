package models

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// unique index violation on the awards ledger
var ErrDuplicate = errors.New("duplicate")

// Stable error codes returned to clients
const (
	CodeConfiguration      = "CONFIGURATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidActionType  = "INVALID_ACTION_TYPE"
	CodeAlreadyRewarded    = "ALREADY_REWARDED"
	CodeInvalidEvent       = "INVALID_EVENT"
	CodePreconditionFailed = "PRECONDITION_FAILED"
	CodeRulesNotFound      = "RULES_NOT_FOUND"
	CodeDatabaseError      = "DATABASE_ERROR"
	CodeServerError        = "SERVER_ERROR"
)

// Terminal failure of one award attempt, no retries inside the service
type AwardError struct {
	Code    string
	Message string
	Err     error
}

func (e *AwardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AwardError) Unwrap() error {
	return e.Err
}

func NewAwardError(code string, message string) *AwardError {
	return &AwardError{Code: code, Message: message}
}

func WrapAwardError(code string, message string, err error) *AwardError {
	return &AwardError{Code: code, Message: message, Err: err}
}

// code for client responses, unexpected errors leak nothing
func ErrorCode(err error) string {
	var aerr *AwardError
	if errors.As(err, &aerr) {
		return aerr.Code
	}
	return CodeServerError
}
