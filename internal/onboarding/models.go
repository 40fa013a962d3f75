package onboarding

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Submission statuses. PENDING is the only status the wizard ever writes;
// the rest are driven by admin review through the workflow state machine.
const (
	StatusPending     = "PENDING"
	StatusUnderReview = "UNDER_REVIEW"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
	StatusContacted   = "CONTACTED"
)

// ErrUnknownStatus is returned when a review action names a status outside
// the workflow.
var ErrUnknownStatus = errors.New("unknown submission status")

// ValidStatus reports whether s is a known submission status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusUnderReview, StatusApproved, StatusRejected, StatusContacted:
		return true
	}
	return false
}

// SubmissionPayload is the field-complete structure handed to the
// persistence collaborator. Every field of the union schema is present as a
// key; absent optional fields are explicit nulls so the persisted shape is
// uniform across business types.
type SubmissionPayload struct {
	BusinessType string `json:"businessType"`
	Status       string `json:"status"`

	OwnerName   *string `json:"ownerName"`
	OwnerMobile *string `json:"ownerMobile"`
	OwnerEmail  *string `json:"ownerEmail"`

	ManagerName   *string `json:"managerName"`
	ManagerMobile *string `json:"managerMobile"`
	ManagerEmail  *string `json:"managerEmail"`

	BusinessName *string `json:"businessName"`
	City         *string `json:"city"`
	Area         *string `json:"area"`
	Address      *string `json:"address"`
	Website      *string `json:"website"`
	Instagram    *string `json:"instagram"`

	BankName      *string `json:"bankName"`
	AccountTitle  *string `json:"accountTitle"`
	AccountNumber *string `json:"accountNumber"`

	CancellationPolicy *string `json:"cancellationPolicy"`
	AdvancePercentage  *string `json:"advancePercentage"`
	RefundPolicy       *string `json:"refundPolicy"`

	VenueType        *string  `json:"venueType"`
	GuestCapacity    *string  `json:"guestCapacity"`
	Amenities        []string `json:"amenities"`
	ParkingAvailable *bool    `json:"parkingAvailable"`
	CateringIncluded *bool    `json:"cateringIncluded"`

	BoutiqueSpecialty *string  `json:"boutiqueSpecialty"`
	DressTypes        []string `json:"dressTypes"`
	StitchingService  *bool    `json:"stitchingService"`

	SalonServices []string `json:"salonServices"`
	HomeService   *bool    `json:"homeService"`
	StaffGender   *string  `json:"staffGender"`

	DecorStyles     []string `json:"decorStyles"`
	LightingService *bool    `json:"lightingService"`
	FreshFlowers    *bool    `json:"freshFlowers"`

	CuisineTypes     []string `json:"cuisineTypes"`
	MenuHighlights   *string  `json:"menuHighlights"`
	MaxOrderCapacity *string  `json:"maxOrderCapacity"`
	LiveCooking      *bool    `json:"liveCooking"`
}

// Submission is one persisted partner application: all common and all
// type-specific fields as nullable columns plus review metadata.
type Submission struct {
	ID           uuid.UUID `db:"id" json:"id"`
	BusinessType string    `db:"business_type" json:"businessType"`
	Status       string    `db:"status" json:"status"`

	OwnerName   *string `db:"owner_name" json:"ownerName"`
	OwnerMobile *string `db:"owner_mobile" json:"ownerMobile"`
	OwnerEmail  *string `db:"owner_email" json:"ownerEmail"`

	ManagerName   *string `db:"manager_name" json:"managerName"`
	ManagerMobile *string `db:"manager_mobile" json:"managerMobile"`
	ManagerEmail  *string `db:"manager_email" json:"managerEmail"`

	BusinessName *string `db:"business_name" json:"businessName"`
	City         *string `db:"city" json:"city"`
	Area         *string `db:"area" json:"area"`
	Address      *string `db:"address" json:"address"`
	Website      *string `db:"website" json:"website"`
	Instagram    *string `db:"instagram" json:"instagram"`

	BankName      *string `db:"bank_name" json:"bankName"`
	AccountTitle  *string `db:"account_title" json:"accountTitle"`
	AccountNumber *string `db:"account_number" json:"accountNumber"`

	CancellationPolicy *string `db:"cancellation_policy" json:"cancellationPolicy"`
	AdvancePercentage  *string `db:"advance_percentage" json:"advancePercentage"`
	RefundPolicy       *string `db:"refund_policy" json:"refundPolicy"`

	VenueType        *string        `db:"venue_type" json:"venueType"`
	GuestCapacity    *string        `db:"guest_capacity" json:"guestCapacity"`
	Amenities        pq.StringArray `db:"amenities" json:"amenities"`
	ParkingAvailable *bool          `db:"parking_available" json:"parkingAvailable"`
	CateringIncluded *bool          `db:"catering_included" json:"cateringIncluded"`

	BoutiqueSpecialty *string        `db:"boutique_specialty" json:"boutiqueSpecialty"`
	DressTypes        pq.StringArray `db:"dress_types" json:"dressTypes"`
	StitchingService  *bool          `db:"stitching_service" json:"stitchingService"`

	SalonServices pq.StringArray `db:"salon_services" json:"salonServices"`
	HomeService   *bool          `db:"home_service" json:"homeService"`
	StaffGender   *string        `db:"staff_gender" json:"staffGender"`

	DecorStyles     pq.StringArray `db:"decor_styles" json:"decorStyles"`
	LightingService *bool          `db:"lighting_service" json:"lightingService"`
	FreshFlowers    *bool          `db:"fresh_flowers" json:"freshFlowers"`

	CuisineTypes     pq.StringArray `db:"cuisine_types" json:"cuisineTypes"`
	MenuHighlights   *string        `db:"menu_highlights" json:"menuHighlights"`
	MaxOrderCapacity *string        `db:"max_order_capacity" json:"maxOrderCapacity"`
	LiveCooking      *bool          `db:"live_cooking" json:"liveCooking"`

	// RawPayload preserves the exact submitted shape for audit/debugging.
	RawPayload datatypes.JSON `db:"raw_payload" json:"-"`

	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
	ReviewedBy *string    `db:"reviewed_by" json:"reviewedBy,omitempty"`
	ReviewedAt *time.Time `db:"reviewed_at" json:"reviewedAt,omitempty"`
	AdminNotes *string    `db:"admin_notes" json:"adminNotes,omitempty"`
}

// SubmissionFilter narrows admin listings.
type SubmissionFilter struct {
	Status       *string
	BusinessType *string
	Page         int
	Limit        int
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// SubmissionList is the listing response shape.
type SubmissionList struct {
	Items      []*Submission `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// StatusUpdate is the admin review action payload.
type StatusUpdate struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes"`
	ReviewedBy *string `json:"reviewedBy"`
}
