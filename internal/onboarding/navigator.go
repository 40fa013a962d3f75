package onboarding

import (
	"errors"
	"fmt"
)

// ErrStepOutOfRange is returned by GoToStep for an index outside the
// current sequence. The navigator never panics on bad indices.
var ErrStepOutOfRange = errors.New("step index out of range")

// StepNavigator tracks the wizard position within the business type's step
// sequence. The state space is (businessType, stepIndex); the catalog is
// the single place that defines the graph.
type StepNavigator struct {
	catalog      *Catalog
	validator    *Validator
	store        *FormStateStore
	businessType BusinessType
	index        int
}

// NewStepNavigator creates a navigator at the first step of the bootstrap
// (selector-only) sequence.
func NewStepNavigator(catalog *Catalog, validator *Validator, store *FormStateStore) *StepNavigator {
	return &StepNavigator{catalog: catalog, validator: validator, store: store}
}

// SetBusinessType switches the active sequence and resets the position to
// the first step. Step lists are discontinuous across types, so there is no
// mapping from step N of one type to step N of another.
func (n *StepNavigator) SetBusinessType(bt BusinessType) {
	n.businessType = bt
	n.index = 0
}

// BusinessType returns the type whose sequence is being walked.
func (n *StepNavigator) BusinessType() BusinessType {
	return n.businessType
}

// CurrentStep returns the descriptor for the active step.
func (n *StepNavigator) CurrentStep() StepDescriptor {
	return n.catalog.StepsFor(n.businessType)[n.index]
}

// CurrentIndex returns the active step index.
func (n *StepNavigator) CurrentIndex() int {
	return n.index
}

// TotalSteps returns the length of the active sequence.
func (n *StepNavigator) TotalSteps() int {
	return n.catalog.TotalSteps(n.businessType)
}

// GoNext validates the current step and advances by exactly one on
// success, capped at the last step. On failure the index is unchanged and
// the field errors are returned for display.
func (n *StepNavigator) GoNext() ValidationResult {
	result := n.validator.ValidateStep(n.CurrentStep().ID, n.store.Get())
	if !result.Valid {
		return result
	}
	if n.index < n.TotalSteps()-1 {
		n.index++
	}
	return result
}

// GoPrevious moves back one step, floored at the first.
func (n *StepNavigator) GoPrevious() {
	if n.index > 0 {
		n.index--
	}
}

// GoToStep jumps to an arbitrary step without validating intervening
// steps. The clickable step indicator relies on this; the final ValidateAll
// gate at submission remains the authoritative backstop.
func (n *StepNavigator) GoToStep(index int) error {
	if index < 0 || index >= n.TotalSteps() {
		return fmt.Errorf("%w: %d of %d", ErrStepOutOfRange, index, n.TotalSteps())
	}
	n.index = index
	return nil
}

// Progress reports completion in [0,1] for display: 0 at the first step, 1
// at the last.
func (n *StepNavigator) Progress() float64 {
	total := n.TotalSteps()
	if total <= 1 {
		return 0
	}
	return float64(n.index) / float64(total-1)
}
