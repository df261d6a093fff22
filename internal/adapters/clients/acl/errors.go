package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/truongteam/medusa-admin/internal/adapters/clients"
	"github.com/truongteam/medusa-admin/internal/domain"
)

// FallbackMessage is shown when an error carries no user-facing text.
const FallbackMessage = "Something went wrong, Please try again."

// ErrorResponse is the error body of the store API. The store sends a flat
// {"type", "code", "message"} object; older gateways nest it under "error".
type ErrorResponse struct {
	Type    string       `json:"type,omitempty"`
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail is the nested error form.
type ErrorDetail struct {
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

// GetType returns the error type from either format.
func (e *ErrorResponse) GetType() string {
	if e.Error != nil && e.Error.Type != "" {
		return e.Error.Type
	}

	return e.Type
}

// GetMessage returns the error message from either format.
func (e *ErrorResponse) GetMessage() string {
	if e.Error != nil && e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// Error types sent by the store.
const (
	ExternalTypeNotFound     = "not_found"
	ExternalTypeInvalidData  = "invalid_data"
	ExternalTypeDuplicate    = "duplicate_error"
	ExternalTypeNotAllowed   = "not_allowed"
	ExternalTypeConflict     = "conflict"
	ExternalTypeUnauthorized = "unauthorized"
)

// ParseErrorResponse parses an error body. It returns nil when the body is
// empty or carries neither a type nor a message.
func ParseErrorResponse(body io.Reader) *ErrorResponse {
	if body == nil {
		return nil
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return nil
	}

	if errResp.GetType() == "" && errResp.GetMessage() == "" {
		return nil
	}

	return &errResp
}

// MapHTTPError maps a failed call to a domain error.
//
// clientErr takes precedence; otherwise resp must be a non-2xx response whose
// body may still be unread. entityID names the gift card for not found errors.
func MapHTTPError(resp *http.Response, clientErr error, serviceName, operation, entityID string) error {
	if clientErr != nil {
		return mapClientError(clientErr, serviceName, operation)
	}

	if resp == nil {
		return domain.NewUnavailableError(serviceName, "no response received")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	var errResp *ErrorResponse
	if resp.Body != nil {
		errResp = ParseErrorResponse(resp.Body)
	}

	if errResp != nil && errResp.GetType() != "" {
		if err := MapExternalType(errResp.GetType(), errResp.GetMessage(), serviceName, operation, entityID); err != nil {
			return err
		}
	}

	return mapStatusCode(resp.StatusCode, errResp, serviceName, operation, entityID)
}

func mapClientError(err error, serviceName, operation string) error {
	switch {
	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("circuit breaker open during %s", operation))
	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("max retries exceeded during %s", operation))
	default:
		return domain.NewUnavailableError(serviceName,
			fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatusCode(status int, errResp *ErrorResponse, serviceName, operation, entityID string) error {
	message := defaultMessageForStatus(status, operation)
	if errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError("gift card", entityID)
	case http.StatusConflict:
		return domain.NewConflictError("gift card", message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.NewValidationError("", message)
	case http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)
	case http.StatusUnauthorized:
		return domain.NewForbiddenError(operation, "authentication required")
	case http.StatusTooManyRequests:
		return domain.NewUnavailableError(serviceName, "rate limit exceeded")
	default:
		if status >= http.StatusInternalServerError {
			return domain.NewUnavailableError(serviceName, message)
		}

		return domain.NewValidationError("", message)
	}
}

func defaultMessageForStatus(status int, operation string) string {
	switch status {
	case http.StatusConflict:
		return "resource conflict"
	case http.StatusBadRequest:
		return "invalid request"
	case http.StatusForbidden:
		return "access denied"
	case http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	default:
		return fmt.Sprintf("%s failed with status %d", operation, status)
	}
}

// MapExternalType maps a store error type to a domain error. Unknown types
// return nil so the caller can fall back to the status code.
func MapExternalType(errType, message, serviceName, operation, entityID string) error {
	switch errType {
	case ExternalTypeNotFound:
		return domain.NewNotFoundError("gift card", entityID)
	case ExternalTypeDuplicate, ExternalTypeConflict:
		return domain.NewConflictError("gift card", message)
	case ExternalTypeInvalidData:
		return domain.NewValidationError("", message)
	case ExternalTypeNotAllowed:
		return domain.NewForbiddenError(operation, message)
	case ExternalTypeUnauthorized:
		return domain.NewForbiddenError(operation, "authentication required")
	default:
		return nil
	}
}

// userMessager is implemented by the domain error types.
type userMessager interface {
	UserMessage() string
}

// DecodeError turns an error into the text shown to the user. Errors without
// user-facing text get FallbackMessage. It satisfies ports.ErrorDecoder.
func DecodeError(err error) string {
	var um userMessager
	if errors.As(err, &um) {
		if msg := um.UserMessage(); msg != "" {
			return msg
		}
	}

	return FallbackMessage
}
