package standings

import "strings"

// Conference identifiers used throughout the service.
const (
	ConferenceAFC = "AFC"
	ConferenceNFC = "NFC"
)

// TeamRecord is the normalized regular-season standings row for one team.
// Records are parsed and validated at the provider boundary; consumers may
// assume non-negative win/loss/tie counts.
type TeamRecord struct {
	Team     string `json:"team"`
	Division string `json:"division"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Ties     int    `json:"ties"`
}

// Conference derives the conference from the division name prefix.
// Divisions are named "AFC East", "NFC North", etc.
func (r TeamRecord) Conference() string {
	if strings.HasPrefix(r.Division, ConferenceAFC) {
		return ConferenceAFC
	}
	return ConferenceNFC
}
