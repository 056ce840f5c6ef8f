package note

import "errors"

var (
	ErrNotFound     = errors.New("note not found")
	ErrInvalidNote  = errors.New("invalid note")
	ErrEmptyTag     = errors.New("tag is empty")
	ErrDuplicateTag = errors.New("tag already present")
	ErrTagTooLong   = errors.New("tag is too long")
)
