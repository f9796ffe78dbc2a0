package storage

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// Assignment conflicts. Claim never overwrites an existing assignee,
	// release never succeeds for anyone but the current one (or an
	// elevated role).
	ErrAlreadyAssigned = errors.New("item is already assigned")
	ErrNotOwner        = errors.New("item is assigned to a different user")

	// A recommendation admits exactly one transition out of pending.
	ErrAlreadyResolved = errors.New("recommendation is already resolved")

	// ErrConflict covers the remaining business-rule conflicts: duplicate
	// slugs or invoice numbers, malformed reorder sets, invalid status
	// transitions.
	ErrConflict = errors.New("conflicting state")
)
