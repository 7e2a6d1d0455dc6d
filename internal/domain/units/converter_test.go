package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSystem(t *testing.T) {
	assert.Equal(t, Metric, ParseSystem(""))
	assert.Equal(t, Metric, ParseSystem("metric"))
	assert.Equal(t, Metric, ParseSystem("unknown"))
	assert.Equal(t, Imperial, ParseSystem("imperial"))
	assert.Equal(t, Imperial, ParseSystem("IMPERIAL"))
}

func TestConvertMetricPassesThrough(t *testing.T) {
	m := Convert(250, "g", Metric)
	assert.Equal(t, 250.0, m.Amount)
	assert.Equal(t, "g", m.Unit)
}

func TestConvertImperial(t *testing.T) {
	tests := []struct {
		name       string
		amount     float64
		unit       string
		wantAmount float64
		wantUnit   string
	}{
		{"grams to ounces", 1000, "g", 35.3, "oz"},
		{"gr alias", 100, "gr", 3.5, "oz"},
		{"kilograms to pounds", 1, "kg", 2.2, "lb"},
		{"two kilograms", 2, "kg", 4.4, "lb"},
		{"milliliters pass through", 200, "ml", 200, "ml"},
		{"count units pass through", 3, "butir", 3, "butir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Convert(tt.amount, tt.unit, Imperial)
			assert.Equal(t, tt.wantAmount, m.Amount)
			assert.Equal(t, tt.wantUnit, m.Unit)
		})
	}
}

func TestScale(t *testing.T) {
	assert.Equal(t, 500.0, Scale(250, 2))
	assert.Equal(t, 250.0, Scale(250, 1))

	// multipliers below one clamp to one
	assert.Equal(t, 250.0, Scale(250, 0))
	assert.Equal(t, 250.0, Scale(250, -3))
}
