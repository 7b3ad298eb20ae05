// pkg/catalog/schema.go
package catalog

// Option is a selectable value with a human-facing label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Catalog holds the fixed option lists the helper screens are built from.
// The wage band strings are stored verbatim on profiles, so editing a band
// here changes what future registrations submit, not what existing records
// hold.
type Catalog struct {
	Version      string   `json:"version"`
	LastUpdated  string   `json:"lastUpdated"`
	FarmingTypes []Option `json:"farmingTypes"`
	WageBands    []string `json:"wageBands"`
	Machinery    []string `json:"machinery"`
	Genders      []string `json:"genders"`
}
