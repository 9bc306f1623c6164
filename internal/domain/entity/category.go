// Package entity contains the catalog records the console works with,
// shaped after the JSON the remote API returns.
package entity

import (
	"encoding/json"
	"slices"
)

// Category is the product category enum of the catalog.
type Category string

const (
	CategoryBathrobe    Category = "bathrobe"
	CategoryTowel       Category = "towel"
	CategorySet         Category = "set"
	CategoryAccessories Category = "accessories"
)

var categoryLabels = map[Category]string{
	CategoryBathrobe:    "Bathrobe",
	CategoryTowel:       "Towel",
	CategorySet:         "Set",
	CategoryAccessories: "Accessories",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryBathrobe, CategoryTowel, CategorySet, CategoryAccessories}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the known values.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// Label returns a human readable name, falling back to the raw value.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

// CategoryOption is one entry of GET /products/categories.
type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// UnmarshalJSON accepts either a bare string or an object with value/label
// (or name) keys.
func (o *CategoryOption) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		o.Value = Category(raw)
		o.Label = o.Value.Label()

		return nil
	}

	var obj struct {
		Value string `json:"value"`
		Name  string `json:"name"`
		Label string `json:"label"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	o.Value = Category(obj.Value)
	if o.Value == "" {
		o.Value = Category(obj.Name)
	}
	o.Label = obj.Label
	if o.Label == "" {
		o.Label = o.Value.Label()
	}

	return nil
}
