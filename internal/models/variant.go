package models

import (
	"fmt"
	"strings"
)

// Variant is the workout kind. It decides which extra field applies and
// which metric is derived.
type Variant string

const (
	Running Variant = "running"
	Cycling Variant = "cycling"
)

// ParseVariant accepts the variant name in any case.
func ParseVariant(s string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", fmt.Errorf("unknown workout type %q (want running or cycling)", s)
	}
	return v, nil
}

func (v Variant) Valid() bool {
	return v == Running || v == Cycling
}

// Title is the capitalized variant name used in descriptions.
func (v Variant) Title() string {
	if v == "" {
		return ""
	}
	return strings.ToUpper(string(v[:1])) + string(v[1:])
}

// ExtraField names the variant specific input.
func (v Variant) ExtraField() string {
	if v == Cycling {
		return "elevation_gain"
	}
	return "cadence"
}

func (v Variant) Icon() string {
	if v == Cycling {
		return "🚴‍♀️"
	}
	return "🏃‍♂️"
}

// PopupClass is the marker style for the variant.
func (v Variant) PopupClass() string {
	return string(v) + "-popup"
}
