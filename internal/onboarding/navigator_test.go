package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNavigator(bt BusinessType, record Record) (*StepNavigator, *FormStateStore) {
	catalog := NewCatalog()
	store := NewFormStateStore()
	if record != nil {
		store.Update(record)
	}
	nav := NewStepNavigator(catalog, NewValidator(catalog), store)
	if bt != "" {
		store.SetBusinessType(bt)
		nav.SetBusinessType(bt)
	}
	return nav, store
}

func TestGoNextBlockedByInvalidStep(t *testing.T) {
	nav, store := newTestNavigator(BusinessTypeCatering, nil)
	assert.NoError(t, nav.GoToStep(1)) // owner-details

	store.Update(Record{
		FieldOwnerName:   "Ayesha",
		FieldOwnerMobile: "03001234567",
		FieldOwnerEmail:  "",
	})

	result := nav.GoNext()

	assert.False(t, result.Valid)
	assert.Contains(t, result.Errors, FieldOwnerEmail)
	assert.Equal(t, 1, nav.CurrentIndex())
}

func TestGoNextAdvancesByOne(t *testing.T) {
	nav, store := newTestNavigator(BusinessTypeCatering, nil)
	assert.NoError(t, nav.GoToStep(1))

	store.Update(Record{
		FieldOwnerName:   "Ayesha",
		FieldOwnerMobile: "03001234567",
		FieldOwnerEmail:  "a@x.com",
	})

	result := nav.GoNext()

	assert.True(t, result.Valid)
	assert.Equal(t, 2, nav.CurrentIndex())
	assert.Equal(t, StepManagerDetails, nav.CurrentStep().ID)
}

func TestGoNextCapsAtLastStep(t *testing.T) {
	nav, _ := newTestNavigator(BusinessTypeVenue, nil)
	last := nav.TotalSteps() - 1
	assert.NoError(t, nav.GoToStep(last))

	result := nav.GoNext() // review step validates trivially

	assert.True(t, result.Valid)
	assert.Equal(t, last, nav.CurrentIndex())
}

func TestGoPreviousFloorsAtZero(t *testing.T) {
	nav, _ := newTestNavigator(BusinessTypeVenue, nil)

	nav.GoPrevious()
	assert.Equal(t, 0, nav.CurrentIndex())

	assert.NoError(t, nav.GoToStep(3))
	nav.GoPrevious()
	assert.Equal(t, 2, nav.CurrentIndex())
}

func TestGoToStepBounds(t *testing.T) {
	nav, _ := newTestNavigator(BusinessTypeVenue, nil)

	assert.ErrorIs(t, nav.GoToStep(-1), ErrStepOutOfRange)
	assert.ErrorIs(t, nav.GoToStep(nav.TotalSteps()), ErrStepOutOfRange)
	assert.Equal(t, 0, nav.CurrentIndex())

	// Jumping forward never validates intervening steps.
	assert.NoError(t, nav.GoToStep(nav.TotalSteps()-1))
	assert.Equal(t, StepReview, nav.CurrentStep().ID)
}

func TestSwitchingBusinessTypeResetsIndex(t *testing.T) {
	nav, store := newTestNavigator(BusinessTypeVenue, nil)
	store.Update(Record{FieldGuestCapacity: "500"})
	assert.NoError(t, nav.GoToStep(4))

	store.SetBusinessType(BusinessTypeCatering)
	nav.SetBusinessType(BusinessTypeCatering)

	assert.Equal(t, 0, nav.CurrentIndex())
	assert.Equal(t, BusinessTypeCatering, nav.BusinessType())
	// The record keeps the venue field.
	assert.Equal(t, "500", store.Get().StringField(FieldGuestCapacity))
}

func TestProgress(t *testing.T) {
	nav, _ := newTestNavigator(BusinessTypeVenue, nil)
	total := nav.TotalSteps()

	assert.Equal(t, 0.0, nav.Progress())

	assert.NoError(t, nav.GoToStep(total-1))
	assert.Equal(t, 1.0, nav.Progress())

	assert.NoError(t, nav.GoToStep(2))
	assert.InDelta(t, float64(2)/float64(total-1), nav.Progress(), 1e-9)
}

func TestProgressBootstrapSequence(t *testing.T) {
	nav, _ := newTestNavigator("", nil)

	assert.Equal(t, 1, nav.TotalSteps())
	assert.Equal(t, 0.0, nav.Progress())
	assert.Equal(t, StepBusinessType, nav.CurrentStep().ID)
}
