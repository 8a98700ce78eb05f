package task

import "errors"

// Validation errors, checked in this order with the first failure
// short-circuiting the rest.
var (
	ErrMissingName      = errors.New("task name is required")
	ErrMissingDate      = errors.New("a calendar day must be selected")
	ErrMissingStartTime = errors.New("start time is required")
	ErrMissingEndTime   = errors.New("end time is required")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
)

var ErrTaskNotFound = errors.New("task not found")
