package itemfn

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldNotFound matches every *FieldNotFoundError under errors.Is.
	ErrFieldNotFound = errors.New("field not found")

	// ErrTypeMismatch matches every *TypeMismatchError under errors.Is.
	ErrTypeMismatch = errors.New("type mismatch")
)

// FieldNotFoundError reports a read of a field the item does not have.
type FieldNotFoundError struct {
	Field string
}

// Error names the missing field.
func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q not found", e.Field)
}

// Is reports whether target is ErrFieldNotFound.
func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrFieldNotFound
}

// TypeMismatchError reports a field whose stored value is not of the type
// the caller asked for.
type TypeMismatchError struct {
	Field string
	// Want is the expected type, Got the dynamic type of the stored value
	// ("nil" for a present nil).
	Want string
	Got  string
}

// Error names the field with the expected and actual types.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q: expected %s, got %s", e.Field, e.Want, e.Got)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
