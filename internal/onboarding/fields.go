package onboarding

// Field names for the flat onboarding record. One namespace across all
// business types; the owning step/type is tracked by the catalog tables so
// relevance never has to be re-derived ad hoc.
const (
	FieldBusinessType = "businessType"

	FieldOwnerName   = "ownerName"
	FieldOwnerMobile = "ownerMobile"
	FieldOwnerEmail  = "ownerEmail"

	FieldManagerName   = "managerName"
	FieldManagerMobile = "managerMobile"
	FieldManagerEmail  = "managerEmail"

	FieldBusinessName = "businessName"
	FieldCity         = "city"
	FieldArea         = "area"
	FieldAddress      = "address"
	FieldWebsite      = "website"
	FieldInstagram    = "instagram"

	FieldBankName      = "bankName"
	FieldAccountTitle  = "accountTitle"
	FieldAccountNumber = "accountNumber"

	FieldCancellationPolicy = "cancellationPolicy"
	FieldAdvancePercentage  = "advancePercentage"
	FieldRefundPolicy       = "refundPolicy"

	// Venue
	FieldVenueType        = "venueType"
	FieldGuestCapacity    = "guestCapacity"
	FieldAmenities        = "amenities"
	FieldParkingAvailable = "parkingAvailable"
	FieldCateringIncluded = "cateringIncluded"

	// Boutique
	FieldBoutiqueSpecialty = "boutiqueSpecialty"
	FieldDressTypes        = "dressTypes"
	FieldStitchingService  = "stitchingService"

	// Beauty parlor
	FieldSalonServices = "salonServices"
	FieldHomeService   = "homeService"
	FieldStaffGender   = "staffGender"

	// Decor
	FieldDecorStyles     = "decorStyles"
	FieldLightingService = "lightingService"
	FieldFreshFlowers    = "freshFlowers"

	// Catering
	FieldCuisineTypes     = "cuisineTypes"
	FieldMenuHighlights   = "menuHighlights"
	FieldMaxOrderCapacity = "maxOrderCapacity"
	FieldLiveCooking      = "liveCooking"
)

// commonFields are relevant to every business type.
var commonFields = []string{
	FieldBusinessType,
	FieldOwnerName, FieldOwnerMobile, FieldOwnerEmail,
	FieldManagerName, FieldManagerMobile, FieldManagerEmail,
	FieldBusinessName, FieldCity, FieldArea, FieldAddress,
	FieldWebsite, FieldInstagram,
	FieldBankName, FieldAccountTitle, FieldAccountNumber,
	FieldCancellationPolicy, FieldAdvancePercentage, FieldRefundPolicy,
}

// typeFields maps each business type to the fields only it owns.
var typeFields = map[BusinessType][]string{
	BusinessTypeVenue: {
		FieldVenueType, FieldGuestCapacity, FieldAmenities,
		FieldParkingAvailable, FieldCateringIncluded,
	},
	BusinessTypeBoutique: {
		FieldBoutiqueSpecialty, FieldDressTypes, FieldStitchingService,
	},
	BusinessTypeBeautyParlor: {
		FieldSalonServices, FieldHomeService, FieldStaffGender,
	},
	BusinessTypeDecor: {
		FieldDecorStyles, FieldLightingService, FieldFreshFlowers,
	},
	BusinessTypeCatering: {
		FieldCuisineTypes, FieldMenuHighlights, FieldMaxOrderCapacity,
		FieldLiveCooking,
	},
}

// RelevantFields returns the fields that matter for a business type: the
// common set plus the type-specific set. Fields left over from a prior type
// switch are outside this set and must be ignored downstream.
func RelevantFields(bt BusinessType) []string {
	out := make([]string, 0, len(commonFields)+8)
	out = append(out, commonFields...)
	out = append(out, typeFields[bt]...)
	return out
}
