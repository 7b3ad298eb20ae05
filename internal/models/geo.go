package models

// GeoScope identifies the tier of the geo hierarchy a lookup targeted.
type GeoScope string

const (
	GeoScopeCountry GeoScope = "country"
	GeoScopeState   GeoScope = "state"
	GeoScopeCity    GeoScope = "city"
)

// GeoEntity is one record from the geo-reference service. Countries and
// states carry a stable ISO2 code; cities are identified by name only.
type GeoEntity struct {
	Code       string `json:"iso2,omitempty"`
	Name       string `json:"name"`
	ParentCode string `json:"parentCode,omitempty"`
}
