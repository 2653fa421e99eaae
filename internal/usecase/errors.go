package usecase

import (
	"errors"
	"fmt"

	"fleet-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error kinds. Match with errors.Is; the HTTP layer maps each to a status.
var (
	ErrValidation = errors.New("validation failed")
	ErrInvalidID  = errors.New("invalid id")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// ServiceError carries the client-facing message for one of the kinds above.
// Fields holds per-field validation messages; Cause is the wrapped failure.
type ServiceError struct {
	Kind    error
	Message string
	Fields  map[string]string
	Cause   error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, utils.FormatValidationErrors(e.Fields))
	}
	return e.Message
}

func (e *ServiceError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func validationError(message string, fields map[string]string) error {
	return &ServiceError{Kind: ErrValidation, Message: message, Fields: fields}
}

func notFoundError(message string) error {
	return &ServiceError{Kind: ErrNotFound, Message: message}
}

func conflictError(message string, cause error) error {
	return &ServiceError{Kind: ErrConflict, Message: message, Cause: cause}
}

// validate runs the struct tags and reports every failing field at once
func validate(req interface{}) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return validationError("Validation failed", errs)
	}
	return nil
}

// parseID distinguishes a malformed id from one that matches nothing
func parseID(raw, resource string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, &ServiceError{
			Kind:    ErrInvalidID,
			Message: fmt.Sprintf("Invalid %s ID format.", resource),
			Cause:   err,
		}
	}
	return id, nil
}
