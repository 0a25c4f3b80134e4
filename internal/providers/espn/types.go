package espn

import (
	"strconv"
	"strings"
)

// flexInt decodes upstream numeric fields that arrive as numbers, numeric
// strings, or null. Unparseable values leave ok false so callers can skip
// the entry the way the feed's own clients do.
type flexInt struct {
	value int
	ok    bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.value = int(v)
	f.ok = true
	return nil
}

type standingsPayload struct {
	Content struct {
		Standings struct {
			Groups []standingsGroup `json:"groups"`
		} `json:"standings"`
	} `json:"content"`
}

type standingsGroup struct {
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation"`
	ShortName    string           `json:"shortName"`
	Groups       []standingsGroup `json:"groups"`
	Standings    struct {
		Entries []standingsEntry `json:"entries"`
	} `json:"standings"`
}

type standingsEntry struct {
	Team struct {
		DisplayName string `json:"displayName"`
	} `json:"team"`
	Stats []statEntry `json:"stats"`
}

type statEntry struct {
	Name  string  `json:"name"`
	Value flexInt `json:"value"`
}

type scoreboardPayload struct {
	Season struct {
		Year int `json:"year"`
		Type int `json:"type"`
	} `json:"season"`
	Week struct {
		Number int `json:"number"`
	} `json:"week"`
	Events []eventPayload `json:"events"`
}

type eventPayload struct {
	Name         string               `json:"name"`
	Date         string               `json:"date"`
	Status       statusPayload        `json:"status"`
	Competitions []competitionPayload `json:"competitions"`
}

type competitionPayload struct {
	Status      statusPayload       `json:"status"`
	Competitors []competitorPayload `json:"competitors"`
}

type statusPayload struct {
	DisplayClock string            `json:"displayClock"`
	Period       int               `json:"period"`
	Type         statusTypePayload `json:"type"`
}

type statusTypePayload struct {
	Name  string `json:"name"`
	State string `json:"state"`
}

type competitorPayload struct {
	HomeAway    string             `json:"homeAway"`
	Score       flexInt            `json:"score"`
	CuratedRank curatedRankPayload `json:"curatedRank"`
	Team        teamPayload        `json:"team"`
}

type curatedRankPayload struct {
	Current flexInt `json:"current"`
}

type teamPayload struct {
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation"`
}
