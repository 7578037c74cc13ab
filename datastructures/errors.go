package datastructures

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when an absent value is stored in a node or list.
	ErrInvalidValue = errors.New("invalid value")
	// ErrInvalidArgument is returned when an absent value is used as a search key.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidLink is returned when a node link setter receives no node.
	ErrInvalidLink = errors.New("invalid link")
	// ErrIndexOutOfBounds is returned when an index is outside the list.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInternalConsistency is carried by the panic raised when head, tail and
	// size disagree. It is never returned.
	ErrInternalConsistency = errors.New("internal consistency violated")
)

func outOfBounds(index int) error {
	return fmt.Errorf("index %d is out of bounds: %w", index, ErrIndexOutOfBounds)
}
