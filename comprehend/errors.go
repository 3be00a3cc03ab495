package comprehend

import (
	"fmt"

	"github.com/aws/smithy-go"
)

// ServiceError is an error response returned by the service. Modelled
// exceptions embed it, so errors.As reaches either the typed error or,
// through smithy.APIError, the code and message of any of them.
type ServiceError struct {
	Code       string
	Message    string
	StatusCode int
	RequestID  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s (status %d, request id %s)", e.Code, e.Message, e.StatusCode, e.RequestID)
}

// ErrorCode implements smithy.APIError.
func (e *ServiceError) ErrorCode() string { return e.Code }

// ErrorMessage implements smithy.APIError.
func (e *ServiceError) ErrorMessage() string { return e.Message }

// ErrorFault implements smithy.APIError.
func (e *ServiceError) ErrorFault() smithy.ErrorFault {
	if e.StatusCode >= 500 {
		return smithy.FaultServer
	}
	return smithy.FaultClient
}

// HTTPStatusCode returns the status of the error response.
func (e *ServiceError) HTTPStatusCode() int { return e.StatusCode }

var _ smithy.APIError = (*ServiceError)(nil)
