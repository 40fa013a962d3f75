package onboarding

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+$`)
	urlPattern   = regexp.MustCompile(`^(https?://)?[^\s/]+\.[^\s]+$`)
)

type ruleKind int

const (
	ruleText ruleKind = iota
	ruleEmail
	ruleURL
)

type fieldRule struct {
	field    string
	label    string
	required bool
	kind     ruleKind
}

// Validator checks step fields against per-step rule sets. Required-field
// burden sits on contact/identity/compliance steps only; descriptive
// business content is always optional so a rich profile never blocks a
// submission.
type Validator struct {
	catalog *Catalog
	rules   map[string][]fieldRule
}

// NewValidator builds the validator with the fixed per-step rule sets.
func NewValidator(catalog *Catalog) *Validator {
	return &Validator{
		catalog: catalog,
		rules: map[string][]fieldRule{
			StepBusinessType: {
				{field: FieldBusinessType, label: "Business type", required: true},
			},
			StepOwnerDetails: {
				{field: FieldOwnerName, label: "Owner name", required: true},
				{field: FieldOwnerMobile, label: "Owner mobile", required: true},
				{field: FieldOwnerEmail, label: "Owner email", required: true, kind: ruleEmail},
			},
			StepManagerDetails: {
				{field: FieldManagerName, label: "Manager name", required: true},
				{field: FieldManagerMobile, label: "Manager mobile", required: true},
				{field: FieldManagerEmail, label: "Manager email", kind: ruleEmail},
			},
			StepBusinessDetails: {
				{field: FieldBusinessName, label: "Business name", required: true},
				{field: FieldCity, label: "City", required: true},
				{field: FieldArea, label: "Area", required: true},
				{field: FieldAddress, label: "Address", required: true},
				{field: FieldWebsite, label: "Website", kind: ruleURL},
			},
			StepPolicies: {
				{field: FieldCancellationPolicy, label: "Cancellation policy", required: true},
			},
		},
	}
}

// ValidateStep checks one step's fields against the record. Steps without a
// rule set validate trivially. Never returns an error; callers decide
// whether to block.
func (v *Validator) ValidateStep(stepID string, record Record) ValidationResult {
	result := ValidationResult{Valid: true, Errors: map[string]string{}}
	for _, rule := range v.rules[stepID] {
		if msg := v.check(rule, record); msg != "" {
			result.Errors[rule.field] = msg
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateAll checks every step of a business type's sequence. This is the
// authoritative backstop at submission time: arbitrary-step jumps can skip
// per-step gates, but nothing skips this one.
func (v *Validator) ValidateAll(bt BusinessType, record Record) ValidationResult {
	result := ValidationResult{Valid: true, Errors: map[string]string{}}
	for _, step := range v.catalog.StepsFor(bt) {
		stepResult := v.ValidateStep(step.ID, record)
		for field, msg := range stepResult.Errors {
			result.Errors[field] = msg
		}
	}
	result.Valid = len(result.Errors) == 0
	return result
}

func (v *Validator) check(rule fieldRule, record Record) string {
	if !record.IsSet(rule.field) {
		if rule.required {
			return rule.label + " is required"
		}
		return ""
	}
	value := record.StringField(rule.field)
	switch rule.kind {
	case ruleEmail:
		if !emailPattern.MatchString(value) {
			return rule.label + " is not a valid email address"
		}
	case ruleURL:
		if !urlPattern.MatchString(value) {
			return rule.label + " is not a valid URL"
		}
	}
	return ""
}
