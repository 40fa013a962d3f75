package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// failingRepository simulates a persistence outage.
type failingRepository struct {
	MemoryRepository
}

var errRepoDown = errors.New("connection refused")

func (f *failingRepository) CreateSubmission(ctx context.Context, s *Submission) error {
	return errRepoDown
}

func TestWizardHappyPathCatering(t *testing.T) {
	repo := NewMemoryRepository()
	w := NewWizard(repo, zap.NewNop())

	require.NoError(t, w.SelectBusinessType(BusinessTypeCatering))

	w.UpdateFields(Record{
		FieldOwnerName:   "Ayesha",
		FieldOwnerMobile: "03001234567",
		FieldOwnerEmail:  "a@x.com",
	})
	assert.True(t, w.Next().Valid)
	assert.Equal(t, StepOwnerDetails, w.Navigator().CurrentStep().ID)

	w.UpdateFields(Record{
		FieldManagerName:   "Bilal",
		FieldManagerMobile: "03007654321",
	})
	assert.True(t, w.Next().Valid)

	w.UpdateFields(Record{
		FieldBusinessName: "Spice Co",
		FieldCity:         "Karachi",
		FieldArea:         "Clifton",
		FieldAddress:      "123 Street",
	})
	assert.True(t, w.Next().Valid)

	w.UpdateFields(Record{
		FieldCuisineTypes:       []string{"BBQ", "Desi"},
		FieldLiveCooking:        true,
		FieldCancellationPolicy: "48hr notice",
	})

	require.NoError(t, w.JumpTo(w.Navigator().TotalSteps()-1))
	assert.Equal(t, StepReview, w.Navigator().CurrentStep().ID)

	id, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	stored, err := repo.GetSubmission(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "CATERING", stored.BusinessType)
	assert.Equal(t, StatusPending, stored.Status)
	require.NotNil(t, stored.OwnerName)
	assert.Equal(t, "Ayesha", *stored.OwnerName)
	assert.Equal(t, []string{"BBQ", "Desi"}, []string(stored.CuisineTypes))
	assert.Nil(t, stored.GuestCapacity)
	assert.NotEmpty(t, []byte(stored.RawPayload))
}

func TestWizardTypeSwitchLeftoversStayOutOfSubmission(t *testing.T) {
	repo := NewMemoryRepository()
	w := NewWizard(repo, zap.NewNop())

	// Start as a venue and fill a venue-only field.
	require.NoError(t, w.SelectBusinessType(BusinessTypeVenue))
	w.UpdateFields(Record{FieldGuestCapacity: "500", FieldParkingAvailable: true})

	// Switch to boutique: navigation resets, the record keeps the leftovers.
	require.NoError(t, w.SelectBusinessType(BusinessTypeBoutique))
	assert.Equal(t, 0, w.Navigator().CurrentIndex())
	assert.Equal(t, "500", w.Store().Get().StringField(FieldGuestCapacity))

	w.UpdateFields(completeCateringRecord())
	w.UpdateFields(Record{
		FieldBusinessType:      string(BusinessTypeBoutique),
		FieldBoutiqueSpecialty: "Bridal wear",
	})

	id, err := w.Submit(context.Background())
	require.NoError(t, err)

	stored, err := repo.GetSubmission(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "BOUTIQUE", stored.BusinessType)
	require.NotNil(t, stored.BoutiqueSpecialty)
	assert.Equal(t, "Bridal wear", *stored.BoutiqueSpecialty)
	// The venue leftovers never reach persistence.
	assert.Nil(t, stored.GuestCapacity)
	assert.Nil(t, stored.ParkingAvailable)
}

func TestWizardSubmitBlockedByValidateAll(t *testing.T) {
	repo := NewMemoryRepository()
	w := NewWizard(repo, zap.NewNop())

	require.NoError(t, w.SelectBusinessType(BusinessTypeDecor))
	w.UpdateFields(Record{FieldOwnerName: "Ayesha"})

	// Jump straight to review past every unvalidated step.
	require.NoError(t, w.JumpTo(w.Navigator().TotalSteps()-1))

	_, err := w.Submit(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Result.Errors, FieldOwnerEmail)
	assert.Contains(t, verr.Result.Errors, FieldBusinessName)
	assert.Contains(t, verr.Result.Errors, FieldCancellationPolicy)

	// State survives: record and position untouched, nothing persisted.
	assert.Equal(t, "Ayesha", w.Store().Get().StringField(FieldOwnerName))
	assert.Equal(t, w.Navigator().TotalSteps()-1, w.Navigator().CurrentIndex())
	_, total, err := repo.ListSubmissions(context.Background(), &SubmissionFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestWizardSubmitTransportFailureKeepsState(t *testing.T) {
	w := NewWizard(&failingRepository{}, zap.NewNop())

	require.NoError(t, w.SelectBusinessType(BusinessTypeCatering))
	w.UpdateFields(completeCateringRecord())
	require.NoError(t, w.JumpTo(w.Navigator().TotalSteps()-1))

	_, err := w.Submit(context.Background())

	require.ErrorIs(t, err, errRepoDown)
	// The user can retry without retyping anything.
	assert.Equal(t, "Spice Co", w.Store().Get().StringField(FieldBusinessName))
	assert.Equal(t, w.Navigator().TotalSteps()-1, w.Navigator().CurrentIndex())

	// Retry against a healthy repository succeeds with the same record.
	w2 := NewWizard(NewMemoryRepository(), zap.NewNop())
	require.NoError(t, w2.SelectBusinessType(BusinessTypeCatering))
	w2.UpdateFields(w.Store().Get())
	_, err = w2.Submit(context.Background())
	assert.NoError(t, err)
}

func TestWizardDebouncedInputFlushedOnSubmit(t *testing.T) {
	repo := NewMemoryRepository()
	w := NewWizard(repo, zap.NewNop())

	require.NoError(t, w.SelectBusinessType(BusinessTypeCatering))
	w.UpdateFields(completeCateringRecord())
	// Last keystrokes still sitting in the debouncer.
	w.Debouncer().Queue(Record{FieldMenuHighlights: "Signature biryani"})

	id, err := w.Submit(context.Background())
	require.NoError(t, err)

	stored, err := repo.GetSubmission(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, stored.MenuHighlights)
	assert.Equal(t, "Signature biryani", *stored.MenuHighlights)
}

func TestWizardReview(t *testing.T) {
	w := NewWizard(NewMemoryRepository(), zap.NewNop())

	require.NoError(t, w.SelectBusinessType(BusinessTypeCatering))
	w.UpdateFields(Record{
		FieldOwnerName:    "Ayesha",
		FieldCuisineTypes: []string{"BBQ"},
	})

	sections := w.Review()

	titles := sectionTitles(sections)
	assert.Equal(t, []string{"Owner", "Catering"}, titles)
}

func TestWizardRestart(t *testing.T) {
	w := NewWizard(NewMemoryRepository(), zap.NewNop())

	require.NoError(t, w.SelectBusinessType(BusinessTypeVenue))
	w.UpdateFields(Record{FieldOwnerName: "Ayesha"})
	require.NoError(t, w.JumpTo(3))

	w.Restart()

	assert.Empty(t, w.Store().Get())
	assert.Equal(t, 1, w.Navigator().TotalSteps())
	assert.Equal(t, StepBusinessType, w.Navigator().CurrentStep().ID)
}

func TestWizardSelectInvalidBusinessType(t *testing.T) {
	w := NewWizard(NewMemoryRepository(), zap.NewNop())

	err := w.SelectBusinessType("photography")

	assert.Error(t, err)
	assert.Equal(t, 1, w.Navigator().TotalSteps())
}
