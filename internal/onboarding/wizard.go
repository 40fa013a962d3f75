package onboarding

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError is returned by Submit when the record fails the final
// whole-record gate. The wizard state is untouched; the caller surfaces the
// field errors and keeps the user on the review step.
type ValidationError struct {
	Result ValidationResult
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission failed validation: %d field error(s)", len(e.Result.Errors))
}

// Wizard drives one onboarding session: the store holds the record, the
// navigator walks the catalog's sequence for the selected type, and Submit
// runs the authoritative ValidateAll gate before handing the payload to the
// persistence collaborator.
type Wizard struct {
	catalog   *Catalog
	validator *Validator
	store     *FormStateStore
	navigator *StepNavigator
	debouncer *Debouncer
	repo      Repository
	logger    *zap.Logger
}

// NewWizard creates a wizard in the bootstrap state: no business type
// selected, only the selector step reachable.
func NewWizard(repo Repository, logger *zap.Logger) *Wizard {
	catalog := NewCatalog()
	validator := NewValidator(catalog)
	store := NewFormStateStore()
	return &Wizard{
		catalog:   catalog,
		validator: validator,
		store:     store,
		navigator: NewStepNavigator(catalog, validator, store),
		debouncer: NewDebouncer(store, DefaultDebounceInterval),
		repo:      repo,
		logger:    logger,
	}
}

// Store exposes the record store to step components.
func (w *Wizard) Store() *FormStateStore { return w.store }

// Navigator exposes step navigation to the step indicator and buttons.
func (w *Wizard) Navigator() *StepNavigator { return w.navigator }

// Debouncer exposes the keystroke coalescer to input widgets.
func (w *Wizard) Debouncer() *Debouncer { return w.debouncer }

// SelectBusinessType records the chosen category and resets navigation to
// the first step of its sequence. The record keeps fields written under any
// previous type.
func (w *Wizard) SelectBusinessType(bt BusinessType) error {
	if !bt.IsValid() {
		return fmt.Errorf("unknown business type %q", bt)
	}
	w.debouncer.Flush()
	w.store.SetBusinessType(bt)
	w.navigator.SetBusinessType(bt)
	return nil
}

// UpdateFields writes step input into the record immediately.
func (w *Wizard) UpdateFields(partial Record) {
	w.store.Update(partial)
}

// Next flushes pending debounced input and attempts the forward
// transition.
func (w *Wizard) Next() ValidationResult {
	w.debouncer.Flush()
	return w.navigator.GoNext()
}

// Previous flushes pending input and moves back one step.
func (w *Wizard) Previous() {
	w.debouncer.Flush()
	w.navigator.GoPrevious()
}

// JumpTo flushes pending input and jumps to an arbitrary step.
func (w *Wizard) JumpTo(index int) error {
	w.debouncer.Flush()
	return w.navigator.GoToStep(index)
}

// Review returns the section-grouped confirmation view of the record.
func (w *Wizard) Review() []Section {
	w.debouncer.Flush()
	return Project(w.store.BusinessType(), w.store.Get())
}

// Submit runs the final whole-record validation and persists the mapped
// payload. On any failure the record and navigation state survive intact so
// the user can fix fields or retry.
func (w *Wizard) Submit(ctx context.Context) (uuid.UUID, error) {
	w.debouncer.Flush()

	bt := w.store.BusinessType()
	record := w.store.Get()

	result := w.validator.ValidateAll(bt, record)
	if !result.Valid {
		return uuid.Nil, &ValidationError{Result: result}
	}

	payload, err := BuildSubmission(bt, record)
	if err != nil {
		// Catalog/mapper table mismatch. Fatal for developers, not a
		// user-recoverable state.
		w.logger.Error("Submission mapping failed", zap.Error(err), zap.String("business_type", string(bt)))
		return uuid.Nil, err
	}

	submission, err := SubmissionFromPayload(payload)
	if err != nil {
		return uuid.Nil, err
	}

	if err := w.repo.CreateSubmission(ctx, submission); err != nil {
		w.logger.Error("Failed to persist submission", zap.Error(err))
		return uuid.Nil, fmt.Errorf("failed to persist submission: %w", err)
	}

	w.logger.Info("Submission created",
		zap.String("submission_id", submission.ID.String()),
		zap.String("business_type", payload.BusinessType))
	return submission.ID, nil
}

// Restart abandons the session: clears the record and returns navigation to
// the bootstrap selector.
func (w *Wizard) Restart() {
	w.debouncer.Stop()
	w.store.Reset()
	w.navigator.SetBusinessType("")
}

// SubmissionFromPayload turns an external payload into a persistable row.
// Shared by the wizard and the public POST handler.
func SubmissionFromPayload(p *SubmissionPayload) (*Submission, error) {
	if _, ok := InternalBusinessType(p.BusinessType); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBusinessType, p.BusinessType)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	return &Submission{
		ID:           uuid.New(),
		BusinessType: p.BusinessType,
		// New submissions always enter the queue as PENDING, whatever the
		// caller put in the payload.
		Status: StatusPending,

		OwnerName:   p.OwnerName,
		OwnerMobile: p.OwnerMobile,
		OwnerEmail:  p.OwnerEmail,

		ManagerName:   p.ManagerName,
		ManagerMobile: p.ManagerMobile,
		ManagerEmail:  p.ManagerEmail,

		BusinessName: p.BusinessName,
		City:         p.City,
		Area:         p.Area,
		Address:      p.Address,
		Website:      p.Website,
		Instagram:    p.Instagram,

		BankName:      p.BankName,
		AccountTitle:  p.AccountTitle,
		AccountNumber: p.AccountNumber,

		CancellationPolicy: p.CancellationPolicy,
		AdvancePercentage:  p.AdvancePercentage,
		RefundPolicy:       p.RefundPolicy,

		VenueType:        p.VenueType,
		GuestCapacity:    p.GuestCapacity,
		Amenities:        p.Amenities,
		ParkingAvailable: p.ParkingAvailable,
		CateringIncluded: p.CateringIncluded,

		BoutiqueSpecialty: p.BoutiqueSpecialty,
		DressTypes:        p.DressTypes,
		StitchingService:  p.StitchingService,

		SalonServices: p.SalonServices,
		HomeService:   p.HomeService,
		StaffGender:   p.StaffGender,

		DecorStyles:     p.DecorStyles,
		LightingService: p.LightingService,
		FreshFlowers:    p.FreshFlowers,

		CuisineTypes:     p.CuisineTypes,
		MenuHighlights:   p.MenuHighlights,
		MaxOrderCapacity: p.MaxOrderCapacity,
		LiveCooking:      p.LiveCooking,

		RawPayload: raw,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
