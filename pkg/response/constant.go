package response

import "time"

const (
	MessageSuccess = "Success"

	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// Wire format for DateTime marshaling. All API timestamps are
	// rendered in UTC.
	DateTimeFormat = time.RFC3339
)
