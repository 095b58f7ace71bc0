package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("resource not found")
	// ErrDuplicate maps a unique constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReferenced maps a foreign key violation.
	ErrReferenced = errors.New("record is referenced by other records")
)
