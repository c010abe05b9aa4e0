package engine

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func floatPtr(v float64) *float64 { return &v }

func int64Ptr(v int64) *int64 { return &v }

func TestComputeRangesSingleTierPassthrough(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierStandard, PriceMin: 120, PriceMax: 180, Unit: "per_visit", IsActive: true},
	}

	got := ComputeRanges(rows, nil, RangeOptions{})
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	if got[0].Min != 120 || got[0].Max != 180 {
		t.Errorf("expected [120, 180], got [%d, %d]", got[0].Min, got[0].Max)
	}
	if got[0].Tier != TierStandard {
		t.Errorf("expected tier standard, got %s", got[0].Tier)
	}
	if got[0].SeasonalMultiplier != 1.0 {
		t.Errorf("expected multiplier 1.0, got %v", got[0].SeasonalMultiplier)
	}
}

func TestComputeRangesUnitMultiplierIsNoOp(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 99, PriceMax: 151, Unit: "per_visit", IsActive: true},
	}
	mod := &SeasonalModifier{MonthStart: 1, MonthEnd: 12, Multiplier: 1.0, Label: "Year Round"}

	got := ComputeRanges(rows, mod, RangeOptions{})
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	if got[0].Min != 99 || got[0].Max != 151 {
		t.Errorf("multiplier 1.0 changed bounds: got [%d, %d]", got[0].Min, got[0].Max)
	}
}

func TestComputeRangesRoundHalfAwayFromZero(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 100, PriceMax: 150, Unit: "per_visit", IsActive: true},
	}
	mod := &SeasonalModifier{MonthStart: 1, MonthEnd: 12, Multiplier: 1.15, Label: "Peak"}

	got := ComputeRanges(rows, mod, RangeOptions{})
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	// 150 * 1.15 = 172.5 rounds up to 173.
	if got[0].Min != 115 || got[0].Max != 173 {
		t.Errorf("expected [115, 173], got [%d, %d]", got[0].Min, got[0].Max)
	}
	if got[0].SeasonalLabel != "Peak" {
		t.Errorf("expected label Peak, got %q", got[0].SeasonalLabel)
	}
}

func TestComputeRangesLocationPrecedence(t *testing.T) {
	locID := uuid.New()
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 50, PriceMax: 70, Unit: "per_visit", IsActive: true},
		{Tier: TierGood, LocationID: &locID, PriceMin: 60, PriceMax: 80, Unit: "per_visit", IsActive: true},
	}

	got := ComputeRanges(rows, nil, RangeOptions{LocationID: &locID})
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	if got[0].Min != 60 || got[0].Max != 80 {
		t.Errorf("expected location row [60, 80] to win, got [%d, %d]", got[0].Min, got[0].Max)
	}
}

func TestComputeRangesDefaultWhenLocationHasNoRows(t *testing.T) {
	locID := uuid.New()
	otherID := uuid.New()
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 50, PriceMax: 70, Unit: "per_visit", IsActive: true},
		{Tier: TierGood, LocationID: &otherID, PriceMin: 90, PriceMax: 110, Unit: "per_visit", IsActive: true},
	}

	got := ComputeRanges(rows, nil, RangeOptions{LocationID: &locID})
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	if got[0].Min != 50 || got[0].Max != 70 {
		t.Errorf("expected default row [50, 70], got [%d, %d]", got[0].Min, got[0].Max)
	}
}

func TestComputeRangesNoLocationDropsScopedRows(t *testing.T) {
	locID := uuid.New()
	rows := []PricingRow{
		{Tier: TierGood, LocationID: &locID, PriceMin: 60, PriceMax: 80, Unit: "per_visit", IsActive: true},
	}

	got := ComputeRanges(rows, nil, RangeOptions{})
	if len(got) != 0 {
		t.Fatalf("expected no ranges without a requested location, got %d", len(got))
	}
}

func TestComputeRangesTierOrder(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierBest, PriceMin: 300, PriceMax: 400, Unit: "per_visit", IsActive: true},
		{Tier: TierGood, PriceMin: 100, PriceMax: 150, Unit: "per_visit", IsActive: true},
		{Tier: TierBetter, PriceMin: 200, PriceMax: 250, Unit: "per_visit", IsActive: true},
	}

	got := ComputeRanges(rows, nil, RangeOptions{})
	want := []Tier{TierGood, TierBetter, TierBest}
	if len(got) != len(want) {
		t.Fatalf("expected %d ranges, got %d", len(want), len(got))
	}
	for i, tier := range want {
		if got[i].Tier != tier {
			t.Errorf("position %d: expected tier %s, got %s", i, tier, got[i].Tier)
		}
	}
}

func TestComputeRangesLotSizeFilter(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierStandard, PriceMin: 40, PriceMax: 60, Unit: "per_visit", IsActive: true, LotSizeMin: nil, LotSizeMax: int64Ptr(10000)},
		{Tier: TierStandard, PriceMin: 70, PriceMax: 90, Unit: "per_visit", IsActive: true, LotSizeMin: int64Ptr(10001), LotSizeMax: int64Ptr(25000)},
		{Tier: TierStandard, PriceMin: 100, PriceMax: 140, Unit: "per_visit", IsActive: true, LotSizeMin: int64Ptr(25001), LotSizeMax: nil},
	}

	tests := []struct {
		name    string
		sqft    float64
		wantMin int64
		wantMax int64
	}{
		{"small lot", 5000, 40, 60},
		{"medium lot", 15000, 70, 90},
		{"large lot", 30000, 100, 140},
		{"unbounded top", 80000, 100, 140},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeRanges(rows, nil, RangeOptions{LotSizeSqft: floatPtr(tc.sqft)})
			if len(got) != 1 {
				t.Fatalf("expected 1 range, got %d", len(got))
			}
			if got[0].Min != tc.wantMin || got[0].Max != tc.wantMax {
				t.Errorf("got [%d, %d], want [%d, %d]", got[0].Min, got[0].Max, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestComputeRangesNoLotSizeKeepsAllBrackets(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierStandard, PriceMin: 40, PriceMax: 60, Unit: "per_visit", IsActive: true, LotSizeMax: int64Ptr(10000)},
		{Tier: TierStandard, PriceMin: 100, PriceMax: 140, Unit: "per_visit", IsActive: true, LotSizeMin: int64Ptr(25001)},
	}

	got := ComputeRanges(rows, nil, RangeOptions{})
	if len(got) != 1 {
		t.Fatalf("expected 1 aggregated range, got %d", len(got))
	}
	if got[0].Min != 40 || got[0].Max != 140 {
		t.Errorf("expected aggregated [40, 140], got [%d, %d]", got[0].Min, got[0].Max)
	}
}

func TestComputeRangesInvalidLotSizeDegradesToUnfiltered(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierStandard, PriceMin: 40, PriceMax: 60, Unit: "per_visit", IsActive: true, LotSizeMax: int64Ptr(10000)},
	}

	for _, sqft := range []float64{-5000, 0, math.NaN(), math.Inf(1)} {
		got := ComputeRanges(rows, nil, RangeOptions{LotSizeSqft: floatPtr(sqft)})
		if len(got) != 1 {
			t.Errorf("lot size %v: expected unfiltered range, got %d ranges", sqft, len(got))
		}
	}
}

func TestComputeRangesSkipsInactiveRows(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 100, PriceMax: 150, Unit: "per_visit", IsActive: false},
	}

	if got := ComputeRanges(rows, nil, RangeOptions{}); len(got) != 0 {
		t.Fatalf("expected inactive rows to be dropped, got %d ranges", len(got))
	}
}

func TestComputeRangesEmptyInput(t *testing.T) {
	got := ComputeRanges(nil, nil, RangeOptions{})
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d ranges", len(got))
	}
}

func TestComputeRangesIdempotent(t *testing.T) {
	locID := uuid.New()
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 100, PriceMax: 150, Unit: "per_visit", IsActive: true, Includes: []string{"mowing", "edging"}},
		{Tier: TierBetter, LocationID: &locID, PriceMin: 200, PriceMax: 260, Unit: "per_visit", IsActive: true},
	}
	mod := &SeasonalModifier{MonthStart: 6, MonthEnd: 8, Multiplier: 1.15, Label: "Peak"}
	opts := RangeOptions{LocationID: &locID, LotSizeSqft: floatPtr(15000)}

	first := ComputeRanges(rows, mod, opts)
	second := ComputeRanges(rows, mod, opts)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated computation diverged: %v vs %v", first, second)
	}
}

func TestComputeRangesIncludesFromFirstRow(t *testing.T) {
	rows := []PricingRow{
		{Tier: TierGood, PriceMin: 100, PriceMax: 150, Unit: "per_visit", IsActive: true, Includes: []string{"mowing", "edging"}},
		{Tier: TierGood, PriceMin: 110, PriceMax: 160, Unit: "per_visit", IsActive: true, Includes: []string{"mowing"}},
	}

	got := ComputeRanges(rows, nil, RangeOptions{})
	if len(got) != 1 {
		t.Fatalf("expected 1 range, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0].Includes, []string{"mowing", "edging"}) {
		t.Errorf("expected first row's includes, got %v", got[0].Includes)
	}
	if got[0].Min != 100 || got[0].Max != 160 {
		t.Errorf("expected aggregated [100, 160], got [%d, %d]", got[0].Min, got[0].Max)
	}
}

func TestSqftForBracket(t *testing.T) {
	tests := []struct {
		bracket string
		want    float64
		ok      bool
	}{
		{"small", 5000, true},
		{"medium", 15000, true},
		{"large", 30000, true},
		{"xlarge", 50000, true},
		{"acreage", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := SqftForBracket(tc.bracket)
		if got != tc.want || ok != tc.ok {
			t.Errorf("SqftForBracket(%q) = (%v, %v), want (%v, %v)", tc.bracket, got, ok, tc.want, tc.ok)
		}
	}
}
