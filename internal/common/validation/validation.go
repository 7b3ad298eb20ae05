package validation

import "regexp"

// ValidationResult is the outcome of validating one input record.
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError names a single failed field with a stable code.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Error codes shared by all field validators.
const (
	CodeRequiredFieldMissing = "REQUIRED_FIELD_MISSING"
	CodeInvalidFormat        = "INVALID_FORMAT"
	CodeInvalidValue         = "INVALID_VALUE"
	CodeOutOfRange           = "OUT_OF_RANGE"
)

var (
	mobileNumberRe = regexp.MustCompile(`^[0-9]{10}$`)
	pincodeRe      = regexp.MustCompile(`^[0-9]{4,10}$`)
)

// NewResult returns an empty, passing result.
func NewResult() *ValidationResult {
	return &ValidationResult{Valid: true}
}

// Add records a failure; the result flips to invalid.
func (r *ValidationResult) Add(field, message, code string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message, Code: code})
}

// RequireString fails when value is empty.
func (r *ValidationResult) RequireString(field, value string) {
	if value == "" {
		r.Add(field, "required field missing", CodeRequiredFieldMissing)
	}
}

// RequirePositiveInt fails when value is not strictly positive.
func (r *ValidationResult) RequirePositiveInt(field string, value int) {
	if value <= 0 {
		r.Add(field, "value must be a positive integer", CodeOutOfRange)
	}
}

// RequireMobileNumber fails unless value is exactly 10 digits.
func (r *ValidationResult) RequireMobileNumber(field, value string) {
	if value == "" {
		r.Add(field, "required field missing", CodeRequiredFieldMissing)
		return
	}
	if !mobileNumberRe.MatchString(value) {
		r.Add(field, "mobile number must be 10 digits", CodeInvalidFormat)
	}
}

// RequirePincode fails unless value looks like a postal code.
func (r *ValidationResult) RequirePincode(field, value string) {
	if value == "" {
		r.Add(field, "required field missing", CodeRequiredFieldMissing)
		return
	}
	if !pincodeRe.MatchString(value) {
		r.Add(field, "pincode must be numeric", CodeInvalidFormat)
	}
}

// RequireOneOf fails when value is empty or not a member of allowed.
func (r *ValidationResult) RequireOneOf(field, value string, allowed func(string) bool) {
	if value == "" {
		r.Add(field, "required field missing", CodeRequiredFieldMissing)
		return
	}
	if !allowed(value) {
		r.Add(field, "value not in allowed set", CodeInvalidValue)
	}
}

// OptionalOneOf fails only when a non-empty value is not a member of
// allowed. Empty is fine: the field is optional.
func (r *ValidationResult) OptionalOneOf(field, value string, allowed func(string) bool) {
	if value == "" {
		return
	}
	if !allowed(value) {
		r.Add(field, "value not in allowed set", CodeInvalidValue)
	}
}
