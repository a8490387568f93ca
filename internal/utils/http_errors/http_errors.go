package utils

import (
	"docmanagement/internal/models"
	"docmanagement/internal/utils/headers"
	"encoding/json"
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type FieldError struct {
	Entity  string `json:"objectName"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status      int          `json:"status"`
	Title       string       `json:"title"`
	Message     string       `json:"message,omitempty"`
	EntityName  string       `json:"entityName,omitempty"`
	ErrorKey    string       `json:"errorKey,omitempty"`
	FieldErrors []FieldError `json:"fieldErrors,omitempty"`
}

func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	writeError(w, ErrorResponse{Status: status, Title: msg})
}

func WriteStatusError(w http.ResponseWriter, status int) {
	WriteJSONError(w, status, http.StatusText(status))
}

// WriteEntityError answers 400 with the error alert headers for e.
func WriteEntityError(w http.ResponseWriter, app string, e *models.EntityError) {
	headers.ErrorAlert(w.Header(), app, e.Entity, e.Code)

	writeError(w, ErrorResponse{
		Status:     http.StatusBadRequest,
		Title:      e.Message,
		Message:    "error." + e.Code,
		EntityName: e.Entity,
		ErrorKey:   e.Code,
	})
}

func WriteValidationError(w http.ResponseWriter, app string, e *models.ValidationError) {
	headers.ErrorAlert(w.Header(), app, e.Entity, models.CodeValidation)

	writeError(w, ErrorResponse{
		Status:      http.StatusBadRequest,
		Title:       "Method argument not valid",
		Message:     "error." + models.CodeValidation,
		EntityName:  e.Entity,
		ErrorKey:    models.CodeValidation,
		FieldErrors: fieldErrors(e),
	})
}

// WriteServiceError maps a service error onto the response and returns the status written.
func WriteServiceError(w http.ResponseWriter, app, entity string, err error) int {
	var entityErr *models.EntityError
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &entityErr):
		WriteEntityError(w, app, entityErr)
		return http.StatusBadRequest
	case errors.As(err, &validationErr):
		WriteValidationError(w, app, validationErr)
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidSort):
		headers.ErrorAlert(w.Header(), app, entity, models.CodeSortInvalid)
		WriteJSONError(w, http.StatusBadRequest, models.ErrInvalidSort.Error())
		return http.StatusBadRequest
	case errors.Is(err, models.ErrFolderNotFound), errors.Is(err, models.ErrDocumentNotFound):
		WriteStatusError(w, http.StatusNotFound)
		return http.StatusNotFound
	default:
		WriteJSONError(w, http.StatusInternalServerError, models.ErrInternal.Error())
		return http.StatusInternalServerError
	}
}

func fieldErrors(e *models.ValidationError) []FieldError {
	var errs validation.Errors
	if !errors.As(e.Err, &errs) {
		return []FieldError{{Entity: e.Entity, Message: e.Err.Error()}}
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	result := make([]FieldError, 0, len(fields))
	for _, field := range fields {
		result = append(result, FieldError{Entity: e.Entity, Field: field, Message: errs[field].Error()})
	}

	return result
}

func writeError(w http.ResponseWriter, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	_ = json.NewEncoder(w).Encode(resp)
}
