package workflows

import "errors"

// ErrInvalidTransition is returned when a requested status change is not
// allowed by the review workflow.
var ErrInvalidTransition = errors.New("invalid status transition")

// StateMachine enforces submission review status transitions
type StateMachine struct {
	allowedTransitions map[string][]string
}

// NewSubmissionStateMachine creates the state machine for partner
// submission review
func NewSubmissionStateMachine() *StateMachine {
	return &StateMachine{
		allowedTransitions: map[string][]string{
			"PENDING":      {"UNDER_REVIEW", "CONTACTED"},
			"UNDER_REVIEW": {"APPROVED", "REJECTED", "CONTACTED"},
			"CONTACTED":    {"UNDER_REVIEW", "APPROVED", "REJECTED"},
			"APPROVED":     {},
			"REJECTED":     {"UNDER_REVIEW"}, // Allow reopening rejected applications
		},
	}
}

// CanTransition checks if a status transition is allowed
func (sm *StateMachine) CanTransition(from, to string) bool {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return false
	}
	for _, allowedTo := range allowed {
		if allowedTo == to {
			return true
		}
	}
	return false
}

// Transition validates a status change, returning ErrInvalidTransition when
// the workflow does not permit it.
func (sm *StateMachine) Transition(from, to string) error {
	if !sm.CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}

// GetAllowedTransitions returns the allowed next statuses for a given status
func (sm *StateMachine) GetAllowedTransitions(from string) []string {
	allowed, exists := sm.allowedTransitions[from]
	if !exists {
		return []string{}
	}
	return allowed
}
