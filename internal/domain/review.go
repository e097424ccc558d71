package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStatus    = errors.New("invalid application status")
	ErrTransitionDenied = errors.New("status transition not allowed")
)

// transitions lists, per current status, the statuses an admin may move an
// application to. Every status may be re-entered so that a reviewer can
// correct an earlier decision.
var transitions = map[Status][]Status{
	StatusPending:  {StatusPending, StatusApproved, StatusRejected},
	StatusApproved: {StatusPending, StatusApproved, StatusRejected},
	StatusRejected: {StatusPending, StatusApproved, StatusRejected},
}

func CheckTransition(from, to Status) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, to)
	}
	for _, s := range transitions[from] {
		if s == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrTransitionDenied, from, to)
}

// StatusChange is an admin review decision.
type StatusChange struct {
	ApplicationID string
	Status        Status
	// Reason is only forwarded to the applicant on rejection.
	Reason string
}
