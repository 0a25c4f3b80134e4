package playoffs

import "github.com/lightscore/nfl-playoff-service/internal/domain/games"

// Status is the playoff classification for a team.
type Status string

const (
	StatusClinchedBye      Status = "clinched_bye"
	StatusClinchedDivision Status = "clinched_division"
	StatusClinchedWildcard Status = "clinched_wildcard"
	StatusInPosition       Status = "in_position"
	StatusInHunt           Status = "in_hunt"
	StatusEliminated       Status = "eliminated"
	StatusSuperBowl        Status = "super_bowl"
	StatusAlive            Status = "alive"
)

// Postseason round names as reported by the bracket feed.
const (
	RoundWildCard   = "Wild Card"
	RoundDivisional = "Divisional"
	RoundConference = "Conference"
	RoundSuperBowl  = "Super Bowl"
)

// ConferenceSuperBowl tags bracket games played between the two conference
// champions; it is a conference value only in the bracket sense.
const ConferenceSuperBowl = "Super Bowl"

// TeamStatus is the per-team playoff picture row produced by both the
// seeding engine and the bracket tracker. It is recomputed fresh from the
// current snapshot on every request and never mutated incrementally.
type TeamStatus struct {
	Team            string `json:"team"`
	Abbreviation    string `json:"abbreviation"`
	Conference      string `json:"conference"`
	Division        string `json:"division"`
	Wins            int    `json:"wins"`
	Losses          int    `json:"losses"`
	Ties            int    `json:"ties"`
	GamesRemaining  int    `json:"gamesRemaining"`
	MaxPossibleWins int    `json:"maxPossibleWins"`
	Seed            *int   `json:"seed"`
	Status          Status `json:"status"`
	StatusDetail    string `json:"statusDetail"`
	EliminatedRound string `json:"eliminatedRound,omitempty"`
	PlayoffWins     int    `json:"playoffWins"`
	PlayoffLosses   int    `json:"playoffLosses"`
}

// SeedEntry is one pre-seeded bracket slot. The eliminated flag is derived
// from bracket game outcomes when the bracket is assembled upstream.
type SeedEntry struct {
	Seed         int    `json:"seed"`
	Team         string `json:"team"`
	Abbreviation string `json:"abbreviation"`
	Eliminated   bool   `json:"eliminated"`
}

// BracketGame is one played or scheduled postseason game.
// Winner is set if and only if the game is final and the scores differ;
// postseason ties are not modeled.
type BracketGame struct {
	Round       string      `json:"round"`
	RoundNumber int         `json:"roundNumber"`
	Conference  string      `json:"conference"`
	HomeTeam    string      `json:"homeTeam"`
	HomeSeed    *int        `json:"homeSeed"`
	HomeScore   *int        `json:"homeScore"`
	AwayTeam    string      `json:"awayTeam"`
	AwaySeed    *int        `json:"awaySeed"`
	AwayScore   *int        `json:"awayScore"`
	Status      games.State `json:"status"`
	Winner      string      `json:"winner,omitempty"`
}

// Bracket is the full postseason picture: seeds 1-7 per conference plus all
// bracket games fetched so far.
type Bracket struct {
	SeasonYear int           `json:"seasonYear"`
	AFCSeeds   []SeedEntry   `json:"afcSeeds"`
	NFCSeeds   []SeedEntry   `json:"nfcSeeds"`
	Games      []BracketGame `json:"games"`
}

// Picture is the payload returned by /playoffs/picture.
type Picture struct {
	SeasonYear     int          `json:"seasonYear"`
	SeasonType     int          `json:"seasonType"`
	AFCTeams       []TeamStatus `json:"afcTeams"`
	NFCTeams       []TeamStatus `json:"nfcTeams"`
	SuperBowlTeams []string     `json:"superBowlTeams"`
}
