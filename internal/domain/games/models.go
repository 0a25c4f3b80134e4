package games

// State mirrors the shared contract for game lifecycle states.
type State string

const (
	StateFinal    State = "final"
	StateLive     State = "live"
	StateUpcoming State = "upcoming"
)

// WeeklyGame is one scoreboard matchup. TeamA is the away side and TeamB the
// home side, matching the presentation order of the upstream feed.
type WeeklyGame struct {
	TeamA          string `json:"teamA"`
	TeamB          string `json:"teamB"`
	Status         State  `json:"status"`
	StartTime      string `json:"startTime"`
	StartTimeLocal string `json:"startTimeLocal,omitempty"`
	StartDateLocal string `json:"startDateTimeLocal,omitempty"`
	GameTime       string `json:"gameTime,omitempty"`
	ScoreA         *int   `json:"scoreA"`
	ScoreB         *int   `json:"scoreB"`
}

// WeekContext identifies which slice of the season a scoreboard covers.
type WeekContext struct {
	Year       int `json:"year"`
	Week       int `json:"week"`
	SeasonType int `json:"seasonType"`
}

// WeeklyResponse is the payload returned by /games/weekly.
type WeeklyResponse struct {
	Context WeekContext  `json:"context"`
	Games   []WeeklyGame `json:"games"`
}

// TeamInfo pairs a team's display name with its abbreviation.
type TeamInfo struct {
	Team         string `json:"team"`
	Abbreviation string `json:"abbreviation"`
}
