// Package validator checks request and dependency structs against their
// `validate` tags and reports failures keyed by JSON field name.
package validator

// Validator validates a struct using its `validate` tags.
type Validator interface {
	Validate(data any) error
}
