package domain

import "testing"

func TestTierPoints(t *testing.T) {
	tests := []struct {
		tier Tier
		want int
	}{
		{TierBest, 20},
		{TierBetter, 15},
		{TierGood, 10},
		{TierStandard, 0},
		{Tier("platinum"), 0},
		{Tier(""), 0},
	}

	for _, tc := range tests {
		if got := tc.tier.Points(); got != tc.want {
			t.Errorf("Points(%q) = %d, want %d", tc.tier, got, tc.want)
		}
	}
}

func TestRecurringFrequency(t *testing.T) {
	recurring := []RecurringFrequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly}
	for _, f := range recurring {
		if !f.IsRecurring() {
			t.Errorf("expected %q to be recurring", f)
		}
	}

	for _, f := range []RecurringFrequency{FrequencyOnce, RecurringFrequency("yearly"), RecurringFrequency("")} {
		if f.IsRecurring() {
			t.Errorf("expected %q to not be recurring", f)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := []struct {
		from, to LeadStatus
	}{
		{StatusNew, StatusContacted},
		{StatusNew, StatusLost},
		{StatusContacted, StatusQuoted},
		{StatusContacted, StatusLost},
		{StatusQuoted, StatusBooked},
		{StatusQuoted, StatusLost},
		{StatusBooked, StatusCompleted},
		{StatusBooked, StatusLost},
	}
	for _, tc := range allowed {
		if !tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct {
		from, to LeadStatus
	}{
		{StatusNew, StatusQuoted},
		{StatusNew, StatusBooked},
		{StatusContacted, StatusNew},
		{StatusQuoted, StatusContacted},
		{StatusCompleted, StatusLost},
		{StatusLost, StatusNew},
		{StatusLost, StatusContacted},
	}
	for _, tc := range denied {
		if tc.from.CanTransition(tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []LeadStatus{StatusCompleted, StatusLost} {
		if !s.IsTerminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	for _, s := range []LeadStatus{StatusNew, StatusContacted, StatusQuoted, StatusBooked} {
		if s.IsTerminal() {
			t.Errorf("expected %s to not be terminal", s)
		}
	}
}
