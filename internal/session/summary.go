package session

import "time"

// Summary holds the figures shown on the home screen and written to the
// journal when a session ends.
type Summary struct {
	Duration   time.Duration
	Score      int
	Total      int
	Rate       float64
	BestStreak int
	WrongNotes int
}

// BuildSummary creates a Summary from the current state.
func BuildSummary(s *State) Summary {
	return Summary{
		Duration:   s.Elapsed(),
		Score:      s.Score,
		Total:      s.Total,
		Rate:       s.Rate(),
		BestStreak: s.BestStreak,
		WrongNotes: len(s.WrongNotes),
	}
}
