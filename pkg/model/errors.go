package model

import (
	"github.com/pkg/errors"
)

var (
	// ErrNotFound indicates the content store has no entry with the requested id.
	ErrNotFound = errors.New("resource not found")

	// ErrDanglingReference indicates a gated entry references a parent
	// collection that cannot be resolved (unpublished or deleted). Such an
	// entry must never be exposed to any client.
	ErrDanglingReference = errors.New("entry references unresolvable parent collection")
)
