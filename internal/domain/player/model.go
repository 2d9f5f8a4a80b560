package player

import "strconv"

// Player is a registered athlete. Fields hold display text already
// normalized from the upstream record.
type Player struct {
	ID          string
	Name        string
	Position    string
	Number      string
	Age         string
	Height      string
	Nationality string
	TeamID      string
	TeamName    string
}

// TeamLabel prefers the team name and falls back to its id.
func (p Player) TeamLabel() string {
	if p.TeamName != "" {
		return p.TeamName
	}
	return p.TeamID
}

// Stats are per-game averages for the scouting sheet.
type Stats struct {
	PointsPerGame   int
	ReboundsPerGame int
	AssistsPerGame  int
	StealsPerGame   int
	BlocksPerGame   int
	FieldGoalPct    float64
	ThreePointPct   float64
	FreeThrowPct    float64
	Minutes         int
	Turnovers       int
	PersonalFouls   int
}

// Columns returns the scouting header labels in display order.
func (Stats) Columns() []string {
	return []string{"PPG", "RPG", "APG", "SPG", "BPG", "FG%", "3P%", "FT%", "MIN", "TOV", "PF"}
}

// Values renders s in the order of Columns.
func (s Stats) Values() []string {
	pct := func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
	return []string{
		strconv.Itoa(s.PointsPerGame),
		strconv.Itoa(s.ReboundsPerGame),
		strconv.Itoa(s.AssistsPerGame),
		strconv.Itoa(s.StealsPerGame),
		strconv.Itoa(s.BlocksPerGame),
		pct(s.FieldGoalPct),
		pct(s.ThreePointPct),
		pct(s.FreeThrowPct),
		strconv.Itoa(s.Minutes),
		strconv.Itoa(s.Turnovers),
		strconv.Itoa(s.PersonalFouls),
	}
}
