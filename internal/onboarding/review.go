package onboarding

type sectionLayout struct {
	title  string
	fields []fieldLabel
}

type fieldLabel struct {
	label string
	field string
}

var commonLayout = []sectionLayout{
	{
		title: "Owner",
		fields: []fieldLabel{
			{"Name", FieldOwnerName},
			{"Mobile", FieldOwnerMobile},
			{"Email", FieldOwnerEmail},
		},
	},
	{
		title: "Manager",
		fields: []fieldLabel{
			{"Name", FieldManagerName},
			{"Mobile", FieldManagerMobile},
			{"Email", FieldManagerEmail},
		},
	},
	{
		title: "Business",
		fields: []fieldLabel{
			{"Business name", FieldBusinessName},
			{"City", FieldCity},
			{"Area", FieldArea},
			{"Address", FieldAddress},
			{"Website", FieldWebsite},
			{"Instagram", FieldInstagram},
		},
	},
}

var typeLayout = map[BusinessType]sectionLayout{
	BusinessTypeVenue: {
		title: "Venue",
		fields: []fieldLabel{
			{"Venue type", FieldVenueType},
			{"Guest capacity", FieldGuestCapacity},
			{"Amenities", FieldAmenities},
			{"Parking available", FieldParkingAvailable},
			{"Catering included", FieldCateringIncluded},
		},
	},
	BusinessTypeBoutique: {
		title: "Boutique",
		fields: []fieldLabel{
			{"Specialty", FieldBoutiqueSpecialty},
			{"Dress types", FieldDressTypes},
			{"Stitching service", FieldStitchingService},
		},
	},
	BusinessTypeBeautyParlor: {
		title: "Beauty Parlor",
		fields: []fieldLabel{
			{"Services", FieldSalonServices},
			{"Home service", FieldHomeService},
			{"Staff gender", FieldStaffGender},
		},
	},
	BusinessTypeDecor: {
		title: "Decor",
		fields: []fieldLabel{
			{"Decor styles", FieldDecorStyles},
			{"Lighting service", FieldLightingService},
			{"Fresh flowers", FieldFreshFlowers},
		},
	},
	BusinessTypeCatering: {
		title: "Catering",
		fields: []fieldLabel{
			{"Cuisine types", FieldCuisineTypes},
			{"Menu highlights", FieldMenuHighlights},
			{"Max order capacity", FieldMaxOrderCapacity},
			{"Live cooking", FieldLiveCooking},
		},
	},
}

var trailingLayout = []sectionLayout{
	{
		title: "Bank",
		fields: []fieldLabel{
			{"Bank", FieldBankName},
			{"Account title", FieldAccountTitle},
			{"Account number", FieldAccountNumber},
		},
	},
	{
		title: "Policies",
		fields: []fieldLabel{
			{"Cancellation policy", FieldCancellationPolicy},
			{"Advance percentage", FieldAdvancePercentage},
			{"Refund policy", FieldRefundPolicy},
		},
	},
}

// Project derives the section-grouped confirmation view of the record for a
// business type. A field appears only if populated; a section with no
// populated fields is omitted. Fields owned by other business types are
// never referenced, so leftovers from a type switch cannot leak into the
// review.
func Project(bt BusinessType, record Record) []Section {
	layouts := make([]sectionLayout, 0, len(commonLayout)+len(trailingLayout)+1)
	layouts = append(layouts, commonLayout...)
	if ts, ok := typeLayout[bt]; ok {
		layouts = append(layouts, ts)
	}
	layouts = append(layouts, trailingLayout...)

	sections := make([]Section, 0, len(layouts))
	for _, layout := range layouts {
		section := Section{Title: layout.title}
		for _, f := range layout.fields {
			if !record.IsSet(f.field) {
				continue
			}
			section.Fields = append(section.Fields, SectionField{
				Label: f.label,
				Value: record.DisplayValue(f.field),
			})
		}
		if len(section.Fields) > 0 {
			sections = append(sections, section)
		}
	}
	return sections
}
