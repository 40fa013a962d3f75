package onboarding

import (
	"fmt"
	"strings"
)

// BusinessType identifies the applicant's vendor category. It selects which
// step sequence the wizard walks through and which optional fields are
// relevant at review and submission time.
type BusinessType string

const (
	BusinessTypeVenue        BusinessType = "venue"
	BusinessTypeBoutique     BusinessType = "boutique"
	BusinessTypeBeautyParlor BusinessType = "beauty-parlor"
	BusinessTypeDecor        BusinessType = "decor"
	BusinessTypeCatering     BusinessType = "catering"
)

// AllBusinessTypes lists every supported category in display order.
var AllBusinessTypes = []BusinessType{
	BusinessTypeVenue,
	BusinessTypeBoutique,
	BusinessTypeBeautyParlor,
	BusinessTypeDecor,
	BusinessTypeCatering,
}

// IsValid reports whether bt is one of the supported categories.
func (bt BusinessType) IsValid() bool {
	for _, t := range AllBusinessTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// ParseBusinessType converts an internal tag to a BusinessType.
func ParseBusinessType(s string) (BusinessType, error) {
	bt := BusinessType(strings.TrimSpace(s))
	if !bt.IsValid() {
		return "", fmt.Errorf("unknown business type %q", s)
	}
	return bt, nil
}

// StepDescriptor is static metadata for one wizard page. Loaded once at
// process start and never mutated.
type StepDescriptor struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Required         bool     `json:"required"`
	ValidationFields []string `json:"validation_fields"`
}

// Record is the single accumulating onboarding record: a flat field
// namespace shared across all business types. Values are string, []string,
// bool or nil. Fields irrelevant to the current business type are simply
// left unset.
type Record map[string]any

// StringField returns the string value of a field, or "" when the field is
// unset or not a string.
func (r Record) StringField(name string) string {
	if v, ok := r[name].(string); ok {
		return v
	}
	return ""
}

// ListField returns the string-list value of a field, or nil.
func (r Record) ListField(name string) []string {
	switch v := r[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// BoolField returns the bool value of a field and whether it was set.
func (r Record) BoolField(name string) (bool, bool) {
	v, ok := r[name].(bool)
	return v, ok
}

// IsSet reports whether a field holds a non-empty value. Empty strings,
// empty lists and nil all count as absent.
func (r Record) IsSet(name string) bool {
	switch v := r[name].(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	case bool:
		return true
	}
	return false
}

// DisplayValue renders a field for the review projection.
func (r Record) DisplayValue(name string) string {
	switch v := r[name].(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		return strings.Join(r.ListField(name), ", ")
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	}
	return ""
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ValidationResult carries per-field error messages for one step or for the
// whole record. Recomputed on every attempted forward transition or
// submission; never persisted.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

// SectionField is one populated label/value pair in the review projection.
type SectionField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Section groups populated fields for the final confirmation screen.
type Section struct {
	Title  string         `json:"title"`
	Fields []SectionField `json:"fields"`
}
