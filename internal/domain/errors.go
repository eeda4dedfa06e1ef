package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrReferencedRecord  = errors.New("record is referenced")
	ErrUnknown           = errors.New("unknown error")

	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrTerminalState      = errors.New("terminal state")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrSlotConflict       = errors.New("slot conflict")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrEmptyReason        = errors.New("empty reason")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidDelta       = errors.New("invalid delta")
	ErrUnknownTier        = errors.New("unknown tier")

	ErrHasActiveReservations = errors.New("table has active reservations")
)

// StatusTransitionError возвращается при попытке недопустимого перехода статуса.
// Оборачивает ErrTerminalState если исходный статус терминальный, иначе ErrInvalidTransition.
type StatusTransitionError struct {
	Entity string
	From   string
	To     string
	kind   error
}

func NewStatusTransitionError(entity, from, to string, terminal bool) *StatusTransitionError {
	kind := ErrInvalidTransition
	if terminal {
		kind = ErrTerminalState
	}
	return &StatusTransitionError{Entity: entity, From: from, To: to, kind: kind}
}

func (e *StatusTransitionError) Error() string {
	return fmt.Sprintf("%s status transition %s -> %s is not allowed", e.Entity, e.From, e.To)
}

func (e *StatusTransitionError) Unwrap() error {
	return e.kind
}

// SlotConflictError возвращается при пересечении брони с уже существующей активной бронью стола.
type SlotConflictError struct {
	TableID       int64
	ConflictingID int64
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf(
		"table %d already has active reservation %d within the turnover window",
		e.TableID,
		e.ConflictingID,
	)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
