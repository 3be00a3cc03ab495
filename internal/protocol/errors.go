package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
)

// ResponseError is a non-2xx service response.
type ResponseError struct {
	Code       string
	Message    string
	StatusCode int
	RequestID  string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s (status %d, request id %s)", e.Code, e.Message, e.StatusCode, e.RequestID)
}

// ErrorCode implements smithy.APIError.
func (e *ResponseError) ErrorCode() string { return e.Code }

// ErrorMessage implements smithy.APIError.
func (e *ResponseError) ErrorMessage() string { return e.Message }

// ErrorFault implements smithy.APIError.
func (e *ResponseError) ErrorFault() smithy.ErrorFault {
	if e.StatusCode >= 500 {
		return smithy.FaultServer
	}
	return smithy.FaultClient
}

// HTTPStatusCode is used by the retryer to classify the failure.
func (e *ResponseError) HTTPStatusCode() int { return e.StatusCode }

// parseError reads the error code from the X-Amzn-ErrorType header or the
// __type member, and the message from message or Message.
func parseError(resp *http.Response, body []byte) *ResponseError {
	e := &ResponseError{
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Amzn-Requestid"),
	}

	var doc struct {
		Type     string `json:"__type"`
		Code     string `json:"code"`
		Message  string `json:"message"`
		MessageU string `json:"Message"`
	}
	if len(bytes.TrimSpace(body)) > 0 {
		// a body that is not JSON still yields a status-derived error
		_ = json.Unmarshal(body, &doc)
	}

	code := resp.Header.Get("X-Amzn-Errortype")
	if code == "" {
		code = doc.Type
	}
	if code == "" {
		code = doc.Code
	}
	e.Code = sanitizeCode(code)
	if e.Code == "" {
		e.Code = "UnknownError"
	}

	e.Message = doc.Message
	if e.Message == "" {
		e.Message = doc.MessageU
	}
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}
	return e
}

// sanitizeCode turns aws.protocoltests#FooError:http://... into FooError.
func sanitizeCode(code string) string {
	if i := strings.IndexByte(code, ':'); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndexByte(code, '#'); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}
