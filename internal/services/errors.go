package services

import "fmt"

// ValidationError means the request was missing an input; the pipeline never ran.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ExtractionError means the uploaded document could not be turned into text.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract document text: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ServiceError means the completion service call failed or returned nothing usable.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("completion service failed: %v", e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
