// internal/screens/registration/validation.go
package registration

import (
	"helper-directory/internal/common/errors"
	"helper-directory/internal/common/validation"
	"helper-directory/internal/models"
	"helper-directory/pkg/catalog"
)

// Validate checks a helper profile for field completeness and format
// before any network call. Machinery is the only optional field.
func Validate(p *models.HelperProfile, cat *catalog.Catalog) *validation.ValidationResult {
	r := validation.NewResult()

	r.RequireString("country", p.Country)
	r.RequireString("state", p.State)
	r.RequireString("city", p.City)
	r.RequirePincode("pincode", p.Pincode)
	r.RequireString("name", p.Name)
	r.RequirePositiveInt("age", p.Age)
	r.RequireOneOf("gender", p.Gender, cat.HasGender)
	r.RequireMobileNumber("mobilenumber", p.MobileNumber)
	r.RequireOneOf("wages", p.Wages, cat.HasWageBand)
	r.RequireOneOf("farmingType", p.FarmingType, cat.HasFarmingType)
	r.OptionalOneOf("machinery", p.Machinery, cat.HasMachinery)

	return r
}

// toFieldErrors converts a validation result to the AppError field list.
func toFieldErrors(r *validation.ValidationResult) []errors.FieldError {
	out := make([]errors.FieldError, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, errors.FieldError{Field: e.Field, Message: e.Message})
	}
	return out
}
