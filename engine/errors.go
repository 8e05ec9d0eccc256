package engine

import "fmt"

// ValidationError reports input violating a field constraint. Nothing was
// applied; the caller can fix the input and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason) }

// NotFoundError reports a reference to an entity that does not exist,
// usually a stale id held by the caller.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %s not found", e.Entity, e.ID) }

// UnavailableError reports a borrow attempt against a tool with no free
// units. An expected condition, not a defect.
type UnavailableError struct {
	ToolID string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("tool %s has no available units", e.ToolID)
}

// ConflictError reports an operation that would break a lifecycle
// invariant, e.g. deleting a tool with active loans or returning a loan
// twice.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }
