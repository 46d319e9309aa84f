package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFair_Totals_SumsActivitiesAndMaterials(t *testing.T) {
	f := Fair{
		Activities: []Activity{
			{Cost: decimal.NewFromInt(100), StaffRequired: 2},
			{Cost: decimal.NewFromFloat(50.5), StaffRequired: 1},
		},
		Materials: []Material{
			{EstimatedCost: decimal.NewFromInt(999), ActualCost: decimal.NewFromInt(25), StaffRequired: 3},
		},
	}

	totals := f.Totals()

	assert.True(t, totals.Cost.Equal(decimal.NewFromFloat(175.5)))
	assert.Equal(t, 6, totals.Staff)
}

func TestFair_Totals_UsesActualCostNotEstimated(t *testing.T) {
	f := Fair{
		Materials: []Material{
			{EstimatedCost: decimal.NewFromInt(500), ActualCost: decimal.Zero},
		},
	}

	assert.True(t, f.Totals().Cost.IsZero())
}

func TestFair_Totals_Empty(t *testing.T) {
	totals := Fair{}.Totals()

	assert.True(t, totals.Cost.IsZero())
	assert.Equal(t, 0, totals.Staff)
}

func TestFair_AttendanceProjection_StripsNonDigits(t *testing.T) {
	f := Fair{Population: "12,345 habitants"}

	assert.Equal(t, 617, f.AttendanceProjection())
}

func TestFair_AttendanceProjection_FallbackOnEmpty(t *testing.T) {
	f := Fair{Population: ""}

	assert.Equal(t, 250, f.AttendanceProjection())
}

func TestFair_AttendanceProjection_FallbackOnNoDigits(t *testing.T) {
	f := Fair{Population: "unknown"}

	assert.Equal(t, 250, f.AttendanceProjection())
}

func TestFair_AttendanceProjection_FloorsResult(t *testing.T) {
	// 5% of 99 is 4.95, projected as 4.
	f := Fair{Population: "99"}

	assert.Equal(t, 4, f.AttendanceProjection())
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "12345", DigitsOnly("12,345 habitants"))
	assert.Equal(t, "2024", DigitsOnly("around 2024-ish"))
	assert.Equal(t, "", DigitsOnly("no numbers here"))
	assert.Equal(t, "", DigitsOnly(""))
}

func TestParseAmount_Valid(t *testing.T) {
	assert.True(t, ParseAmount("150.75").Equal(decimal.NewFromFloat(150.75)))
	assert.True(t, ParseAmount(" 42 ").Equal(decimal.NewFromInt(42)))
	assert.True(t, ParseAmount("0").IsZero())
}

func TestParseAmount_MalformedBecomesZero(t *testing.T) {
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("12abc").IsZero())
	assert.True(t, ParseAmount("").IsZero())
}

func TestParseAmount_NegativeBecomesZero(t *testing.T) {
	assert.True(t, ParseAmount("-50").IsZero())
}
