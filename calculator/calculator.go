// Package calculator compares point-to-point integrations with integrations
// through a shared standard.
package calculator

import (
	"github.com/shopspring/decimal"
)

// Slider bounds used by the interactive calculator.
const (
	MinPlatforms = 1
	MaxPlatforms = 50
	MinMerchants = 1
	MaxMerchants = 5000

	DefaultPlatforms = 10
	DefaultMerchants = 1000
)

// MaxCount is the largest count whose square still fits in an int64, so
// WithoutStandard cannot overflow.
const MaxCount = 3037000499

// PercentPlaces is the precision of ReductionPercent.
const PercentPlaces = 1

var hundred = decimal.NewFromInt(100)

// Cost is the integration count with and without a shared standard.
type Cost struct {
	Platforms       int64 `json:"platforms"`
	Merchants       int64 `json:"merchants"`
	WithoutStandard int64 `json:"withoutStandard"`
	WithStandard    int64 `json:"withStandard"`
	Savings         int64 `json:"savings"`

	// ReductionPercent is (WithoutStandard - WithStandard) / WithoutStandard * 100,
	// rounded to one decimal place. It is negative when the standard costs more
	// than direct integration (e.g. one platform and one merchant).
	ReductionPercent decimal.Decimal `json:"reductionPercent"`

	// Defined is false when WithoutStandard is zero; ReductionPercent is then 0.
	Defined bool `json:"defined"`
}

// Calculate computes the cost for the given counts. Negative counts are
// treated as zero and counts above MaxCount as MaxCount. A zero count makes
// the reduction undefined, reported as 0% with Defined false.
func Calculate(platforms, merchants int64) Cost {
	platforms = clamp(platforms, 0, MaxCount)
	merchants = clamp(merchants, 0, MaxCount)

	c := Cost{
		Platforms:       platforms,
		Merchants:       merchants,
		WithoutStandard: platforms * merchants,
		WithStandard:    platforms + merchants,
	}
	c.Savings = c.WithoutStandard - c.WithStandard

	if c.WithoutStandard == 0 {
		c.ReductionPercent = decimal.Zero
		return c
	}

	c.Defined = true
	c.ReductionPercent = decimal.NewFromInt(c.Savings).
		Div(decimal.NewFromInt(c.WithoutStandard)).
		Mul(hundred).
		Round(PercentPlaces)
	return c
}

// InRange reports whether n is an accepted calculator input.
func InRange(n int64) bool {
	return n >= 0 && n <= MaxCount
}

// ClampToSliders bounds the counts to the slider ranges.
func ClampToSliders(platforms, merchants int64) (int64, int64) {
	return clamp(platforms, MinPlatforms, MaxPlatforms), clamp(merchants, MinMerchants, MaxMerchants)
}

// FormatPercent renders the reduction the way the UI shows it, e.g. "89.9%".
func (c Cost) FormatPercent() string {
	if !c.Defined {
		return "N/A"
	}
	return c.ReductionPercent.StringFixed(PercentPlaces) + "%"
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
