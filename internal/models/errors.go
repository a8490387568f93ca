package models

import (
	"errors"
	"fmt"
)

var (
	ErrInternal           = errors.New("internal server error")
	ErrMethodNotAllowed   = errors.New("method not allowed")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidParams      = errors.New("invalid params")
	ErrInvalidSort        = errors.New("invalid sort property")
	ErrUnsupportedMedia   = errors.New("unsupported media type")
	ErrFolderNotFound     = errors.New("folder not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	EntityFolder   = "folder"
	EntityDocument = "document"
)

const (
	CodeIDExists       = "idexists"
	CodeIDNull         = "idnull"
	CodeIDInvalid      = "idinvalid"
	CodeIDNotFound     = "idnotfound"
	CodeFolderNotFound = "foldernotfound"
	CodeValidation     = "validation"
	CodeSortInvalid    = "sortinvalid"
)

// EntityError is a client error about an entity's identity or references.
type EntityError struct {
	Entity  string
	Code    string
	Message string
}

func (e *EntityError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Entity, e.Message, e.Code)
}

func NewIDExists(entity string) *EntityError {
	return &EntityError{Entity: entity, Code: CodeIDExists, Message: fmt.Sprintf("A new %s cannot already have an ID", entity)}
}

func NewIDNull(entity string) *EntityError {
	return &EntityError{Entity: entity, Code: CodeIDNull, Message: "Invalid id"}
}

func NewIDInvalid(entity string) *EntityError {
	return &EntityError{Entity: entity, Code: CodeIDInvalid, Message: "Invalid ID"}
}

func NewIDNotFound(entity string) *EntityError {
	return &EntityError{Entity: entity, Code: CodeIDNotFound, Message: "Entity not found"}
}

func NewFolderNotFound(entity string) *EntityError {
	return &EntityError{Entity: entity, Code: CodeFolderNotFound, Message: "Referenced folder not found"}
}

// ValidationError wraps field-level validation failures of an entity.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: validation failed: %v", e.Entity, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// CheckPathID verifies that a full or partial update body names the record in the path.
func CheckPathID(entity string, pathID int64, bodyID *int64) error {
	if bodyID == nil {
		return NewIDNull(entity)
	}

	if *bodyID != pathID {
		return NewIDInvalid(entity)
	}

	return nil
}
