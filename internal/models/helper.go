package models

// Gender values accepted on a helper profile.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Farming type values accepted on a helper profile.
const (
	FarmingOrganic     = "organic"
	FarmingTraditional = "traditional"
	FarmingModern      = "modern"
	FarmingHydroponics = "hydroponics"
	FarmingAquaculture = "aquaculture"
)

// Wage bands are fixed daily-wage ranges; the band string itself is the
// stored value, not a parsed range.
const (
	WageBand0To500     = "0 - 500"
	WageBand501To1000  = "501 - 1000"
	WageBand1001To1500 = "1001 - 1500"
	WageBand1501To3000 = "1501 - 30000"
)

// HelperProfile is a hired-helper record in the directory. The id is
// assigned by the directory service on creation; profiles are never
// mutated or deleted by this subsystem.
type HelperProfile struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	MobileNumber string `json:"mobilenumber"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	Wages        string `json:"wages"`
	FarmingType  string `json:"farmingType"`
	Machinery    string `json:"machinery,omitempty"`
}

// SearchCriteria holds the optional search predicates. An empty field is
// unset and participates in no predicate. Age is kept as the entered text
// and compared against the profile age verbatim. Criteria are rebuilt per
// interaction and consumed once per search.
type SearchCriteria struct {
	Country     string `json:"country,omitempty"`
	State       string `json:"state,omitempty"`
	City        string `json:"city,omitempty"`
	FarmingType string `json:"farmingType,omitempty"`
	Wages       string `json:"wages,omitempty"`
	Age         string `json:"age,omitempty"`
}

// IsZero reports whether no predicate is set, i.e. the criteria act as an
// identity filter.
func (c SearchCriteria) IsZero() bool {
	return c == SearchCriteria{}
}
