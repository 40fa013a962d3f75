package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionTransitions(t *testing.T) {
	sm := NewSubmissionStateMachine()

	allowed := [][2]string{
		{"PENDING", "UNDER_REVIEW"},
		{"PENDING", "CONTACTED"},
		{"UNDER_REVIEW", "APPROVED"},
		{"UNDER_REVIEW", "REJECTED"},
		{"UNDER_REVIEW", "CONTACTED"},
		{"CONTACTED", "UNDER_REVIEW"},
		{"CONTACTED", "APPROVED"},
		{"CONTACTED", "REJECTED"},
		{"REJECTED", "UNDER_REVIEW"},
	}
	for _, tr := range allowed {
		assert.True(t, sm.CanTransition(tr[0], tr[1]), "%s -> %s should be allowed", tr[0], tr[1])
		assert.NoError(t, sm.Transition(tr[0], tr[1]))
	}

	denied := [][2]string{
		{"PENDING", "APPROVED"},
		{"PENDING", "REJECTED"},
		{"APPROVED", "REJECTED"},
		{"APPROVED", "PENDING"},
		{"REJECTED", "APPROVED"},
		{"UNDER_REVIEW", "PENDING"},
	}
	for _, tr := range denied {
		assert.False(t, sm.CanTransition(tr[0], tr[1]), "%s -> %s should be denied", tr[0], tr[1])
		assert.ErrorIs(t, sm.Transition(tr[0], tr[1]), ErrInvalidTransition)
	}
}

func TestApprovedIsTerminal(t *testing.T) {
	sm := NewSubmissionStateMachine()

	assert.Empty(t, sm.GetAllowedTransitions("APPROVED"))
}

func TestUnknownStatus(t *testing.T) {
	sm := NewSubmissionStateMachine()

	assert.False(t, sm.CanTransition("ARCHIVED", "PENDING"))
	assert.Empty(t, sm.GetAllowedTransitions("ARCHIVED"))
}
