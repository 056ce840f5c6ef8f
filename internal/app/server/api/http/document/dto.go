package document

import "notekeeper/internal/domain/document"

type getInput struct{}

type getOutput struct {
	Body document.Document
}

type replaceInput struct {
	Body document.Document
}

type replaceOutput struct {
	Body document.Document
}
