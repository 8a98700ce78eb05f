package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert task document")
	ErrFailedToQuery  = errors.New("failed to query task documents")
	ErrFailedToPatch  = errors.New("failed to patch task document")
	ErrFailedToRemove = errors.New("failed to remove task document")
	ErrTaskNotExists  = errors.New("task document does not exist")
)
