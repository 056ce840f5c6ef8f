package document

import "errors"

var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrDuplicateID     = errors.New("duplicate id in document")
	ErrStoreFailure    = errors.New("document store failure")
)
