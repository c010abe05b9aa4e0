// Package scoring computes the quality score for an inbound lead. The same
// function backs the pre-submission preview and the persisted score, so the
// two can never drift.
package scoring

import (
	"strings"

	"greenscape_backend/internal/leads/domain"
)

// Point values per signal. The raw maximum sums to exactly 100.
const (
	pointsEmail     = 15
	pointsPhone     = 15
	pointsAddress   = 10
	pointsCityZip   = 5
	pointsService   = 10
	pointsRecurring = 15
	pointsLocation  = 5
	pointsNotes     = 5

	minNotesLength = 10

	maxScore = 100
)

// Submission carries the form signals that feed the score. All fields are
// optional; a missing signal contributes zero points.
type Submission struct {
	Email     string
	Phone     string
	Address   string
	City      string
	Zip       string
	Notes     string
	Tier      domain.Tier
	Frequency domain.RecurringFrequency

	HasService  bool
	HasLocation bool
}

// Factor is one scored signal, reported in the preview breakdown.
type Factor struct {
	Signal string `json:"signal"`
	Points int    `json:"points"`
}

// Score returns the lead quality score in [0, 100].
func Score(sub Submission) int {
	score, _ := ScoreWithBreakdown(sub)
	return score
}

// ScoreWithBreakdown returns the score plus the per-signal factors that
// produced it. Signals are independent and order does not matter; the sum
// is clamped to 100 as a guard against future additions.
func ScoreWithBreakdown(sub Submission) (int, []Factor) {
	total := 0
	factors := []Factor{}

	add := func(signal string, points int) {
		total += points
		factors = append(factors, Factor{Signal: signal, Points: points})
	}

	if strings.TrimSpace(sub.Email) != "" {
		add("email", pointsEmail)
	}
	if strings.TrimSpace(sub.Phone) != "" {
		add("phone", pointsPhone)
	}
	if strings.TrimSpace(sub.Address) != "" {
		add("address", pointsAddress)
	}
	if strings.TrimSpace(sub.City) != "" && strings.TrimSpace(sub.Zip) != "" {
		add("city_zip", pointsCityZip)
	}
	if sub.HasService {
		add("service", pointsService)
	}
	if points := sub.Tier.Points(); points > 0 {
		add("tier", points)
	}
	if sub.Frequency.IsRecurring() {
		add("recurring", pointsRecurring)
	}
	if sub.HasLocation {
		add("location", pointsLocation)
	}
	if len(strings.TrimSpace(sub.Notes)) > minNotesLength {
		add("notes", pointsNotes)
	}

	return clampScore(total), factors
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
