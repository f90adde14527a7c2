package entity

// Score is the per-session tally. Counters only grow until an explicit reset.
type Score struct {
	X     int `json:"x"`
	O     int `json:"o"`
	Draws int `json:"draws"`
}

// Record increments the counter matching a finished outcome.
func (that Score) Record(outcome Outcome) Score {
	switch outcome.Status {
	case StatusWon:
		if outcome.Winner == PlayerX {
			that.X++
		} else if outcome.Winner == PlayerO {
			that.O++
		}
	case StatusDraw:
		that.Draws++
	case StatusOngoing:
	}

	return that
}
