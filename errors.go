package bstview

import "github.com/cockroachdb/errors"

// Input errors
var (
	// ErrInvalidValue indicates that text could not be parsed as an integer key.
	ErrInvalidValue = errors.New("invalid integer value")

	// ErrNoValues indicates that a value list was empty.
	ErrNoValues = errors.New("no values given")

	// ErrInvalidCount indicates that a random tree size is out of range.
	ErrInvalidCount = errors.New("invalid node count")
)

// Configuration errors
var (
	// ErrInvalidInterval indicates a replay interval outside the allowed range.
	ErrInvalidInterval = errors.New("invalid animation interval")
)

// Script errors
var (
	// ErrEmptyScript indicates a script without steps.
	ErrEmptyScript = errors.New("script has no steps")

	// ErrUnknownAction indicates a script step with an unrecognized action.
	ErrUnknownAction = errors.New("unknown script action")
)

// Tree structure errors
var (
	// ErrOrderViolation indicates a node out of strict ascending key order.
	ErrOrderViolation = errors.New("binary search tree order violated")

	// ErrDepthMismatch indicates a node whose recorded depth is stale.
	ErrDepthMismatch = errors.New("node depth mismatch")

	// ErrSizeMismatch indicates that the node count disagrees with the structure.
	ErrSizeMismatch = errors.New("node count mismatch")
)
