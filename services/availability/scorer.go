package availability

import "meetplan/models"

// FlatScore is the baseline score assigned to every conflict-free slot.
const FlatScore = 100

// SlotScorer ranks a conflict-free slot. Scoring never affects which slots
// the engine returns, only their relative ranking for downstream selection.
type SlotScorer func(models.CandidateSlot) int

// FlatScorer is the default policy: every conflict-free slot scores the same.
func FlatScorer(models.CandidateSlot) int {
	return FlatScore
}

// TimeOfDayPreferences tunes PreferenceScorer. Hours are daily clock hours.
type TimeOfDayPreferences struct {
	FavoredStartHour   int
	FavoredEndHour     int
	FavoredBonus       int
	PenalizedStartHour int
	PenalizedEndHour   int
	PenaltyAmount      int
}

// DefaultPreferences favors mid-morning starts and penalizes the midday
// window.
var DefaultPreferences = TimeOfDayPreferences{
	FavoredStartHour:   10,
	FavoredEndHour:     12,
	FavoredBonus:       20,
	PenalizedStartHour: 12,
	PenalizedEndHour:   14,
	PenaltyAmount:      20,
}

// PreferenceScorer builds a scorer that adjusts the flat baseline by
// time-of-day preference. Install it on the engine to rank mid-morning
// slots above midday ones; leave the engine's scorer nil to keep the flat
// baseline behavior.
func PreferenceScorer(prefs TimeOfDayPreferences) SlotScorer {
	return func(slot models.CandidateSlot) int {
		score := FlatScore
		h := slot.Interval.Start.Hour()
		if h >= prefs.FavoredStartHour && h < prefs.FavoredEndHour {
			score += prefs.FavoredBonus
		}
		if h >= prefs.PenalizedStartHour && h < prefs.PenalizedEndHour {
			score -= prefs.PenaltyAmount
		}
		return score
	}
}
