package match

import (
	"strings"
	"time"
)

// KickoffLayout is how kickoff times are printed in reports.
const KickoffLayout = "2006-01-02 15:04"

var kickoffLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Match is one played or scheduled game in the history report.
type Match struct {
	// Seq is the 1-based position in the upstream payload, including rows
	// that were skipped as malformed.
	Seq        int
	ID         string
	KickoffRaw string
	HomeTeam   string
	AwayTeam   string
	HomeScore  string
	AwayScore  string
}

// Kickoff formats KickoffRaw as KickoffLayout, or returns it untouched when
// it is not an ISO-8601 timestamp.
func (m Match) Kickoff() string {
	raw := strings.TrimSpace(m.KickoffRaw)
	if raw == "" {
		return m.KickoffRaw
	}
	// Offsets are dropped rather than converted; a trailing Z means UTC.
	candidate := strings.Replace(raw, "Z", "", 1)
	for _, layout := range kickoffLayouts {
		if t, err := time.Parse(layout, candidate); err == nil {
			return t.Format(KickoffLayout)
		}
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(KickoffLayout)
		}
	}
	return m.KickoffRaw
}

// Score renders "<home> - <away>".
func (m Match) Score() string {
	return m.HomeScore + " - " + m.AwayScore
}

// RosterEntry is one player registered for a match.
type RosterEntry struct {
	TeamID     string
	PlayerName string
	Position   string
}
