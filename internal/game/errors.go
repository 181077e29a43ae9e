package game

import (
	"fmt"

	"github.com/lukev/innovation_server/internal/models"
)

// IllegalActionError rejects a player action with a coded reason. The
// caller's state is unchanged and the caller is expected to retry.
type IllegalActionError struct {
	Reason models.Reason
	Detail string
}

func (e *IllegalActionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("illegal action: %s", e.Reason)
	}
	return fmt.Sprintf("illegal action: %s (%s)", e.Reason, e.Detail)
}

// IllegalChoiceError rejects a choice answer: id/player mismatch, kind
// mismatch, or an answer violating the choice's constraints.
type IllegalChoiceError struct {
	Reason models.Reason
	Detail string
}

func (e *IllegalChoiceError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("illegal choice: %s", e.Reason)
	}
	return fmt.Sprintf("illegal choice: %s (%s)", e.Reason, e.Detail)
}

// InvariantError is a bug in the engine or card content: a primitive found
// an expected card missing, an effect returned an inconsistent state, or a
// snapshot failed its checksum. The current call aborts and the caller's
// prior state is untouched.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine invariant violation: %s", e.Detail)
}

func illegalAction(reason models.Reason, format string, args ...any) *IllegalActionError {
	return &IllegalActionError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func illegalChoice(reason models.Reason, format string, args ...any) *IllegalChoiceError {
	return &IllegalChoiceError{Reason: reason, Detail: fmt.Sprintf(format, args...)}
}

func invariant(format string, args ...any) *InvariantError {
	return &InvariantError{Detail: fmt.Sprintf(format, args...)}
}
