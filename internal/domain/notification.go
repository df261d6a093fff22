package domain

import "time"

// Severity is the tone of a user notification.
type Severity string

// Notification severities.
const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a message reported to the user after an operation.
type Notification struct {
	GiftCardID string
	Message    string
	Severity   Severity
	At         time.Time
}
