// Package units converts ingredient measurements between the metric
// and imperial display systems.
package units

import (
	"math"
	"strings"
)

// System identifies the target display system
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ParseSystem maps a query-string value to a System, defaulting to metric
func ParseSystem(s string) System {
	if strings.EqualFold(s, string(Imperial)) {
		return Imperial
	}
	return Metric
}

// Measure is a display amount together with its unit label
type Measure struct {
	Amount float64
	Unit   string
}

const (
	gramsPerOunce    = 0.035274
	kilogramsPerPound = 2.20462
)

// Convert maps an amount and source unit to the target system.
// Metric passes through unchanged. For imperial, grams become ounces
// and kilograms become pounds, rounded to one decimal; units without a
// conversion table entry pass through unchanged. The caller applies
// any serving multiplier before conversion.
func Convert(amount float64, unit string, target System) Measure {
	if target != Imperial {
		return Measure{Amount: amount, Unit: unit}
	}
	switch strings.ToLower(unit) {
	case "g", "gr":
		return Measure{Amount: round1(amount * gramsPerOunce), Unit: "oz"}
	case "kg":
		return Measure{Amount: round1(amount * kilogramsPerPound), Unit: "lb"}
	}
	return Measure{Amount: amount, Unit: unit}
}

// Scale applies a serving multiplier, clamped to a minimum of 1
func Scale(amount float64, multiplier int) float64 {
	if multiplier < 1 {
		multiplier = 1
	}
	return amount * float64(multiplier)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
