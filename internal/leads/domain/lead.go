// Package domain holds the lead lifecycle types shared by scoring,
// persistence and transport.
package domain

// Tier is the pricing package a prospect selected on the quote form.
type Tier string

const (
	TierGood     Tier = "good"
	TierBetter   Tier = "better"
	TierBest     Tier = "best"
	TierStandard Tier = "standard"
)

// Points returns the quality-score contribution of a tier choice. Premium
// tiers signal stronger purchase intent. Unknown tiers score zero.
func (t Tier) Points() int {
	switch t {
	case TierBest:
		return 20
	case TierBetter:
		return 15
	case TierGood:
		return 10
	default:
		return 0
	}
}

// IsValid reports whether t is one of the known tiers.
func (t Tier) IsValid() bool {
	switch t {
	case TierGood, TierBetter, TierBest, TierStandard:
		return true
	}
	return false
}

// RecurringFrequency is how often a prospect wants service.
type RecurringFrequency string

const (
	FrequencyOnce     RecurringFrequency = "once"
	FrequencyWeekly   RecurringFrequency = "weekly"
	FrequencyBiweekly RecurringFrequency = "biweekly"
	FrequencyMonthly  RecurringFrequency = "monthly"
)

// IsRecurring reports whether the frequency indicates repeat business.
func (f RecurringFrequency) IsRecurring() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// LotSizeBracket is the coarse property-size choice from the quote form.
type LotSizeBracket string

const (
	LotSmall  LotSizeBracket = "small"
	LotMedium LotSizeBracket = "medium"
	LotLarge  LotSizeBracket = "large"
	LotXLarge LotSizeBracket = "xlarge"
)

// LeadStatus tracks a lead through the sales pipeline.
type LeadStatus string

const (
	StatusNew       LeadStatus = "new"
	StatusContacted LeadStatus = "contacted"
	StatusQuoted    LeadStatus = "quoted"
	StatusBooked    LeadStatus = "booked"
	StatusCompleted LeadStatus = "completed"
	StatusLost      LeadStatus = "lost"
)

// IsValid reports whether s is one of the known statuses.
func (s LeadStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusQuoted, StatusBooked, StatusCompleted, StatusLost:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the pipeline.
func (s LeadStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusLost
}

// statusTransitions maps each status to the statuses it may move to.
// Every non-terminal status can be marked lost.
var statusTransitions = map[LeadStatus][]LeadStatus{
	StatusNew:       {StatusContacted, StatusLost},
	StatusContacted: {StatusQuoted, StatusLost},
	StatusQuoted:    {StatusBooked, StatusLost},
	StatusBooked:    {StatusCompleted, StatusLost},
	StatusCompleted: {},
	StatusLost:      {},
}

// CanTransition reports whether a lead may move from s to target.
func (s LeadStatus) CanTransition(target LeadStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}
