package apperr

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError collects every violated field so the UI can flag
// them all in one round trip.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func NewValidation() *ValidationError { return &ValidationError{Fields: map[string][]string{}} }

func (e *ValidationError) Add(field, msg string) { e.Fields[field] = append(e.Fields[field], msg) }

func (e *ValidationError) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Err returns nil when no violation was recorded, so validators can
// end with `return v.Err()`.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var parts []string
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

type NotFoundError struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
}

func NotFound(entity, id string) *NotFoundError { return &NotFoundError{Entity: entity, ID: id} }

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %q not found", e.Entity, e.ID) }

// InsufficientStockError carries the available amount so the caller
// can show how much is actually left.
type InsufficientStockError struct {
	BeanID      string  `json:"bean_id"`
	RequestedKG float64 `json:"requested_kg"`
	AvailableKG float64 `json:"available_kg"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("lot %q has %.2f kg, requested %.2f kg", e.BeanID, e.AvailableKG, e.RequestedKG)
}

// StorageError wraps a datastore failure; not user-correctable.
type StorageError struct {
	Op  string
	Err error
}

func Storage(op string, err error) *StorageError { return &StorageError{Op: op, Err: err} }

func (e *StorageError) Error() string { return "storage: " + e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }
