package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepsForEveryBusinessType(t *testing.T) {
	catalog := NewCatalog()

	for _, bt := range AllBusinessTypes {
		steps := catalog.StepsFor(bt)

		assert.Equal(t, catalog.TotalSteps(bt), len(steps))
		assert.Equal(t, StepBusinessType, steps[0].ID, "first step of %s must be the selector", bt)
		assert.Equal(t, StepReview, steps[len(steps)-1].ID)
	}
}

func TestStepsForUnsetBusinessType(t *testing.T) {
	catalog := NewCatalog()

	steps := catalog.StepsFor("")

	assert.Len(t, steps, 1)
	assert.Equal(t, StepBusinessType, steps[0].ID)
}

func TestStepIndex(t *testing.T) {
	catalog := NewCatalog()

	assert.Equal(t, 0, catalog.StepIndex(BusinessTypeCatering, StepBusinessType))
	assert.Equal(t, 4, catalog.StepIndex(BusinessTypeCatering, StepCateringDetails))
	assert.Equal(t, StepNotFound, catalog.StepIndex(BusinessTypeCatering, StepVenueDetails))
	assert.Equal(t, StepNotFound, catalog.StepIndex(BusinessTypeCatering, "no-such-step"))
}

func TestTypeSpecificStepCarriesOwnedFields(t *testing.T) {
	catalog := NewCatalog()

	venueSteps := catalog.StepsFor(BusinessTypeVenue)
	assert.Equal(t, StepVenueDetails, venueSteps[4].ID)
	assert.Contains(t, venueSteps[4].ValidationFields, FieldGuestCapacity)
	assert.NotContains(t, venueSteps[4].ValidationFields, FieldCuisineTypes)
}

func TestStepsForReturnsCopy(t *testing.T) {
	catalog := NewCatalog()

	steps := catalog.StepsFor(BusinessTypeVenue)
	steps[0].ID = "mutated"

	assert.Equal(t, StepBusinessType, catalog.StepsFor(BusinessTypeVenue)[0].ID)
}
