// internal/gateway/schema.go
package gateway

import (
	"github.com/xeipuuv/gojsonschema"

	"helper-directory/internal/common/errors"
)

// helperSchema is the structural contract for POST /helpers bodies. It
// rejects malformed JSON shapes before the business validation runs;
// catalog membership (wage bands, farming types, machinery) is checked by
// the registration service, not here.
const helperSchema = `{
	"type": "object",
	"properties": {
		"name":         {"type": "string"},
		"age":          {"type": "integer", "minimum": 1},
		"gender":       {"type": "string"},
		"mobilenumber": {"type": "string", "pattern": "^[0-9]{10}$"},
		"country":      {"type": "string"},
		"state":        {"type": "string"},
		"city":         {"type": "string"},
		"pincode":      {"type": "string"},
		"wages":        {"type": "string"},
		"farmingType":  {"type": "string"},
		"machinery":    {"type": "string"}
	},
	"required": ["name", "age", "gender", "mobilenumber", "country", "state", "city", "pincode", "wages", "farmingType"],
	"additionalProperties": false
}`

var compiledHelperSchema = gojsonschema.NewStringLoader(helperSchema)

// validateHelperBody runs the JSON-schema check over the raw request body.
func validateHelperBody(body []byte) *errors.AppError {
	result, err := gojsonschema.Validate(compiledHelperSchema, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.NewValidationError([]errors.FieldError{
			{Field: "body", Message: "invalid JSON"},
		})
	}
	if result.Valid() {
		return nil
	}

	fields := make([]errors.FieldError, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		fields = append(fields, errors.FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return errors.NewValidationError(fields)
}
