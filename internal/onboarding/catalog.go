package onboarding

// StepNotFound is the sentinel returned by StepIndex when a step id does
// not exist in a business type's sequence. Absence is a normal query
// outcome during navigation-bounds checks, not an error.
const StepNotFound = -1

// Step ids. Ordering of a type's sequence is significant: it defines both
// the visual order and the "can proceed" gate order.
const (
	StepBusinessType    = "business-type"
	StepOwnerDetails    = "owner-details"
	StepManagerDetails  = "manager-details"
	StepBusinessDetails = "business-details"
	StepVenueDetails    = "venue-details"
	StepBoutiqueDetails = "boutique-details"
	StepSalonDetails    = "salon-details"
	StepDecorDetails    = "decor-details"
	StepCateringDetails = "catering-details"
	StepBankDetails     = "bank-details"
	StepPolicies        = "policies"
	StepReview          = "review"
)

// Catalog is the static table mapping each business type to its ordered
// step sequence. Built once; lookups are pure functions of static data.
type Catalog struct {
	steps map[BusinessType][]StepDescriptor
}

// NewCatalog builds the step catalog.
func NewCatalog() *Catalog {
	selector := StepDescriptor{
		ID:               StepBusinessType,
		Title:            "Business Type",
		Required:         true,
		ValidationFields: []string{FieldBusinessType},
	}
	owner := StepDescriptor{
		ID:               StepOwnerDetails,
		Title:            "Owner Details",
		Required:         true,
		ValidationFields: []string{FieldOwnerName, FieldOwnerMobile, FieldOwnerEmail},
	}
	manager := StepDescriptor{
		ID:               StepManagerDetails,
		Title:            "Manager Details",
		Required:         true,
		ValidationFields: []string{FieldManagerName, FieldManagerMobile, FieldManagerEmail},
	}
	business := StepDescriptor{
		ID:               StepBusinessDetails,
		Title:            "Business Details",
		Required:         true,
		ValidationFields: []string{FieldBusinessName, FieldCity, FieldArea, FieldAddress, FieldWebsite},
	}
	bank := StepDescriptor{
		ID:               StepBankDetails,
		Title:            "Bank Details",
		Required:         false,
		ValidationFields: []string{FieldBankName, FieldAccountTitle, FieldAccountNumber},
	}
	policies := StepDescriptor{
		ID:               StepPolicies,
		Title:            "Policies",
		Required:         true,
		ValidationFields: []string{FieldCancellationPolicy, FieldAdvancePercentage, FieldRefundPolicy},
	}
	review := StepDescriptor{
		ID:       StepReview,
		Title:    "Review & Submit",
		Required: false,
	}

	typeSteps := map[BusinessType]StepDescriptor{
		BusinessTypeVenue: {
			ID:               StepVenueDetails,
			Title:            "Venue Details",
			ValidationFields: typeFields[BusinessTypeVenue],
		},
		BusinessTypeBoutique: {
			ID:               StepBoutiqueDetails,
			Title:            "Boutique Details",
			ValidationFields: typeFields[BusinessTypeBoutique],
		},
		BusinessTypeBeautyParlor: {
			ID:               StepSalonDetails,
			Title:            "Parlor Details",
			ValidationFields: typeFields[BusinessTypeBeautyParlor],
		},
		BusinessTypeDecor: {
			ID:               StepDecorDetails,
			Title:            "Decor Details",
			ValidationFields: typeFields[BusinessTypeDecor],
		},
		BusinessTypeCatering: {
			ID:               StepCateringDetails,
			Title:            "Catering Details",
			ValidationFields: typeFields[BusinessTypeCatering],
		},
	}

	steps := make(map[BusinessType][]StepDescriptor, len(AllBusinessTypes))
	for bt, ts := range typeSteps {
		steps[bt] = []StepDescriptor{selector, owner, manager, business, ts, bank, policies, review}
	}

	return &Catalog{steps: steps}
}

// StepsFor returns the ordered step sequence for a business type. An unset
// or unknown type yields only the selector step: the user must pick a type
// before any other step is reachable.
func (c *Catalog) StepsFor(bt BusinessType) []StepDescriptor {
	seq, ok := c.steps[bt]
	if !ok {
		return []StepDescriptor{c.steps[BusinessTypeVenue][0]}
	}
	out := make([]StepDescriptor, len(seq))
	copy(out, seq)
	return out
}

// StepIndex returns the position of a step within a type's sequence, or
// StepNotFound.
func (c *Catalog) StepIndex(bt BusinessType, stepID string) int {
	for i, s := range c.StepsFor(bt) {
		if s.ID == stepID {
			return i
		}
	}
	return StepNotFound
}

// TotalSteps returns the length of a type's sequence.
func (c *Catalog) TotalSteps(bt BusinessType) int {
	return len(c.StepsFor(bt))
}
