// Package nutrition estimates macro totals for an ingredient list.
//
// The estimation is a keyword heuristic, not nutritional truth: each
// ingredient name is matched against fixed keyword groups in priority
// order and the first matching group's per-amount multipliers are
// applied. Documented as best-effort estimation, not a guarantee.
package nutrition

import (
	"math"
	"strings"

	"github.com/resepmakanan/v1/internal/domain/recipe"
)

// bucket holds the per-unit-amount multipliers for one keyword group
type bucket struct {
	keywords []string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

// Buckets are evaluated in order; the first match wins. Keywords are
// the Indonesian ingredient terms the builder form expects.
var buckets = []bucket{
	{ // protein-heavy
		keywords: []string{"ayam", "daging", "ikan", "telur"},
		calories: 2.5, protein: 0.25, fat: 0.15,
	},
	{ // starch
		keywords: []string{"nasi", "tepung", "gula", "roti", "kentang"},
		calories: 3.5, carbs: 0.75,
	},
	{ // fat-heavy
		keywords: []string{"minyak", "mentega", "santan", "keju"},
		calories: 8.5, fat: 0.85,
	},
	{ // produce
		keywords: []string{"sayur", "buah", "tomat", "bawang"},
		calories: 0.4, carbs: 0.08,
	},
	{ // legume
		keywords: []string{"kacang", "tempe", "tahu"},
		calories: 1.8, protein: 0.15, fat: 0.08,
	},
}

// Unclassified ingredients fall back to this default group.
var defaultBucket = bucket{calories: 1.2, protein: 0.04, carbs: 0.15}

// Estimate derives a Nutrition aggregate from an ingredient list.
// Negative or missing amounts count as zero; totals are rounded to
// the nearest integer per field. Pure and deterministic.
func Estimate(ingredients []recipe.Ingredient) recipe.Nutrition {
	var cal, prot, carb, fat float64

	for _, ing := range ingredients {
		amt := ing.Amount
		if amt < 0 || math.IsNaN(amt) {
			amt = 0
		}
		b := classify(ing.Item)
		cal += amt * b.calories
		prot += amt * b.protein
		carb += amt * b.carbs
		fat += amt * b.fat
	}

	return recipe.Nutrition{
		Calories: int(math.Round(cal)),
		Protein:  int(math.Round(prot)),
		Carbs:    int(math.Round(carb)),
		Fat:      int(math.Round(fat)),
	}
}

func classify(name string) bucket {
	lower := strings.ToLower(name)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b
			}
		}
	}
	return defaultBucket
}

// TotalPrepMinutes sums the per-ingredient preparation seconds and
// rounds to minutes, for the builder's time dashboard.
func TotalPrepMinutes(ingredients []recipe.Ingredient) int {
	total := 0
	for _, ing := range ingredients {
		if ing.PrepTimeSeconds > 0 {
			total += ing.PrepTimeSeconds
		}
	}
	return int(math.Round(float64(total) / 60))
}
