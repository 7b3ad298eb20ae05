// pkg/catalog/catalog.go
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"helper-directory/internal/models"
)

// Default returns the compiled-in catalog matching the production option
// lists.
func Default() *Catalog {
	return &Catalog{
		Version: "1.0.0",
		FarmingTypes: []Option{
			{Value: models.FarmingOrganic, Label: "Organic Farming"},
			{Value: models.FarmingTraditional, Label: "Traditional Farming"},
			{Value: models.FarmingModern, Label: "Modern Farming"},
			{Value: models.FarmingHydroponics, Label: "Hydroponics"},
			{Value: models.FarmingAquaculture, Label: "Aquaculture"},
		},
		WageBands: []string{
			models.WageBand0To500,
			models.WageBand501To1000,
			models.WageBand1001To1500,
			models.WageBand1501To3000,
		},
		Machinery: []string{
			"Plough",
			"Tractor",
			"Thresher",
			"Rake",
			"Sprayer Pumps",
			"Wheelbarrow",
			"Seeder & Fertilizer",
			"Trolley Pump",
		},
		Genders: []string{
			models.GenderMale,
			models.GenderFemale,
			models.GenderOther,
		},
	}
}

// Load reads a catalog from a JSON file. The loaded catalog replaces the
// defaults wholesale; it is not merged.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks that every option list is populated and free of
// duplicate values.
func (c *Catalog) Validate() error {
	if len(c.FarmingTypes) == 0 {
		return fmt.Errorf("catalog: farmingTypes is empty")
	}
	if len(c.WageBands) == 0 {
		return fmt.Errorf("catalog: wageBands is empty")
	}
	if len(c.Machinery) == 0 {
		return fmt.Errorf("catalog: machinery is empty")
	}
	if len(c.Genders) == 0 {
		return fmt.Errorf("catalog: genders is empty")
	}

	seen := make(map[string]bool)
	for _, ft := range c.FarmingTypes {
		if ft.Value == "" {
			return fmt.Errorf("catalog: farming type with empty value")
		}
		if seen["ft:"+ft.Value] {
			return fmt.Errorf("catalog: duplicate farming type %q", ft.Value)
		}
		seen["ft:"+ft.Value] = true
	}
	for _, wb := range c.WageBands {
		if seen["wb:"+wb] {
			return fmt.Errorf("catalog: duplicate wage band %q", wb)
		}
		seen["wb:"+wb] = true
	}
	for _, m := range c.Machinery {
		if seen["m:"+m] {
			return fmt.Errorf("catalog: duplicate machinery %q", m)
		}
		seen["m:"+m] = true
	}
	return nil
}

// HasFarmingType reports whether v is a known farming type value.
func (c *Catalog) HasFarmingType(v string) bool {
	for _, ft := range c.FarmingTypes {
		if ft.Value == v {
			return true
		}
	}
	return false
}

// HasWageBand reports whether v is a known wage band.
func (c *Catalog) HasWageBand(v string) bool {
	for _, wb := range c.WageBands {
		if wb == v {
			return true
		}
	}
	return false
}

// HasMachinery reports whether v is a known machinery option.
func (c *Catalog) HasMachinery(v string) bool {
	for _, m := range c.Machinery {
		if m == v {
			return true
		}
	}
	return false
}

// HasGender reports whether v is an accepted gender value.
func (c *Catalog) HasGender(v string) bool {
	for _, g := range c.Genders {
		if g == v {
			return true
		}
	}
	return false
}
