package onboarding

import (
	"errors"
	"fmt"
)

// ErrUnknownBusinessType signals a catalog/mapper table mismatch: an
// internal tag with no external enum spelling. This is a programming error
// surfaced to developers, never a user-facing validation failure.
var ErrUnknownBusinessType = errors.New("business type has no external enum mapping")

// externalBusinessType translates internal tags to the enum spelling the
// persistence collaborator expects.
var externalBusinessType = map[BusinessType]string{
	BusinessTypeVenue:        "VENUE",
	BusinessTypeBoutique:     "BOUTIQUE",
	BusinessTypeBeautyParlor: "BEAUTY_PARLOR",
	BusinessTypeDecor:        "DECOR",
	BusinessTypeCatering:     "CATERING",
}

// BuildSubmission maps the accumulated record onto the fixed persisted
// schema. Every union field is present in the output; fields the user never
// filled (or that belong to another business type) come out as explicit
// nulls, and status is always PENDING.
func BuildSubmission(bt BusinessType, record Record) (*SubmissionPayload, error) {
	external, ok := externalBusinessType[bt]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBusinessType, bt)
	}

	p := &SubmissionPayload{
		BusinessType: external,
		Status:       StatusPending,

		OwnerName:   optString(record, FieldOwnerName),
		OwnerMobile: optString(record, FieldOwnerMobile),
		OwnerEmail:  optString(record, FieldOwnerEmail),

		ManagerName:   optString(record, FieldManagerName),
		ManagerMobile: optString(record, FieldManagerMobile),
		ManagerEmail:  optString(record, FieldManagerEmail),

		BusinessName: optString(record, FieldBusinessName),
		City:         optString(record, FieldCity),
		Area:         optString(record, FieldArea),
		Address:      optString(record, FieldAddress),
		Website:      optString(record, FieldWebsite),
		Instagram:    optString(record, FieldInstagram),

		BankName:      optString(record, FieldBankName),
		AccountTitle:  optString(record, FieldAccountTitle),
		AccountNumber: optString(record, FieldAccountNumber),

		CancellationPolicy: optString(record, FieldCancellationPolicy),
		AdvancePercentage:  optString(record, FieldAdvancePercentage),
		RefundPolicy:       optString(record, FieldRefundPolicy),
	}

	// Type-specific fields are copied only for the active type; a record
	// can hold leftovers from a prior type switch and those stay null.
	switch bt {
	case BusinessTypeVenue:
		p.VenueType = optString(record, FieldVenueType)
		p.GuestCapacity = optString(record, FieldGuestCapacity)
		p.Amenities = record.ListField(FieldAmenities)
		p.ParkingAvailable = optBool(record, FieldParkingAvailable)
		p.CateringIncluded = optBool(record, FieldCateringIncluded)
	case BusinessTypeBoutique:
		p.BoutiqueSpecialty = optString(record, FieldBoutiqueSpecialty)
		p.DressTypes = record.ListField(FieldDressTypes)
		p.StitchingService = optBool(record, FieldStitchingService)
	case BusinessTypeBeautyParlor:
		p.SalonServices = record.ListField(FieldSalonServices)
		p.HomeService = optBool(record, FieldHomeService)
		p.StaffGender = optString(record, FieldStaffGender)
	case BusinessTypeDecor:
		p.DecorStyles = record.ListField(FieldDecorStyles)
		p.LightingService = optBool(record, FieldLightingService)
		p.FreshFlowers = optBool(record, FieldFreshFlowers)
	case BusinessTypeCatering:
		p.CuisineTypes = record.ListField(FieldCuisineTypes)
		p.MenuHighlights = optString(record, FieldMenuHighlights)
		p.MaxOrderCapacity = optString(record, FieldMaxOrderCapacity)
		p.LiveCooking = optBool(record, FieldLiveCooking)
	}

	return p, nil
}

// InternalBusinessType reverses the external enum spelling, for rows coming
// back from the API surface.
func InternalBusinessType(external string) (BusinessType, bool) {
	for bt, ext := range externalBusinessType {
		if ext == external {
			return bt, true
		}
	}
	return "", false
}

func optString(record Record, field string) *string {
	if !record.IsSet(field) {
		return nil
	}
	v := record.StringField(field)
	if v == "" {
		return nil
	}
	return &v
}

func optBool(record Record, field string) *bool {
	if v, ok := record.BoolField(field); ok {
		return &v
	}
	return nil
}
