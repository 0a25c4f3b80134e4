package picture

import (
	"errors"
	"testing"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	domainstandings "github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/store"
)

func fullLeague() []domainstandings.TeamRecord {
	divisions := map[string][]string{
		"AFC East":  {"Buffalo Bills", "Miami Dolphins", "New York Jets", "New England Patriots"},
		"AFC North": {"Baltimore Ravens", "Pittsburgh Steelers", "Cincinnati Bengals", "Cleveland Browns"},
		"AFC South": {"Houston Texans", "Indianapolis Colts", "Jacksonville Jaguars", "Tennessee Titans"},
		"AFC West":  {"Kansas City Chiefs", "Denver Broncos", "Los Angeles Chargers", "Las Vegas Raiders"},
		"NFC East":  {"Philadelphia Eagles", "Washington Commanders", "Dallas Cowboys", "New York Giants"},
		"NFC North": {"Detroit Lions", "Minnesota Vikings", "Green Bay Packers", "Chicago Bears"},
		"NFC South": {"Tampa Bay Buccaneers", "Atlanta Falcons", "New Orleans Saints", "Carolina Panthers"},
		"NFC West":  {"Los Angeles Rams", "Seattle Seahawks", "Arizona Cardinals", "San Francisco 49ers"},
	}

	var records []domainstandings.TeamRecord
	for division, teams := range divisions {
		for i, team := range teams {
			records = append(records, domainstandings.TeamRecord{
				Team:     team,
				Division: division,
				Wins:     12 - 2*i,
				Losses:   1 + 2*i,
			})
		}
	}
	return records
}

func TestPictureRegularSeason(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetStandings(fullLeague())
	st.SetWeekly(domaingames.WeeklyResponse{
		Context: domaingames.WeekContext{Year: 2024, Week: 15, SeasonType: playoffs.SeasonTypeRegular},
	})

	svc := NewService(st, nil)
	pic, err := svc.Picture(0)
	if err != nil {
		t.Fatalf("expected picture, got %v", err)
	}
	if pic.SeasonType != playoffs.SeasonTypeRegular {
		t.Fatalf("expected default season type 2, got %d", pic.SeasonType)
	}
	if pic.SeasonYear != 2024 {
		t.Fatalf("expected season year from stored context, got %d", pic.SeasonYear)
	}
	if len(pic.AFCTeams) != 16 || len(pic.NFCTeams) != 16 {
		t.Fatalf("expected 16 teams per conference, got %d/%d", len(pic.AFCTeams), len(pic.NFCTeams))
	}
	if len(pic.SuperBowlTeams) != 0 {
		t.Fatalf("regular season picture must not name Super Bowl teams, got %v", pic.SuperBowlTeams)
	}
	if pic.AFCTeams[0].Seed == nil || *pic.AFCTeams[0].Seed != 1 {
		t.Fatalf("expected top seed first, got %+v", pic.AFCTeams[0])
	}
}

func TestPicturePostseason(t *testing.T) {
	st := store.NewMemoryStore()
	st.SetBracket(domainplayoffs.Bracket{
		SeasonYear: 2024,
		AFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 1, Team: "Kansas City Chiefs", Abbreviation: "KC"},
			{Seed: 4, Team: "Houston Texans", Abbreviation: "HOU", Eliminated: true},
		},
		NFCSeeds: []domainplayoffs.SeedEntry{
			{Seed: 2, Team: "Philadelphia Eagles", Abbreviation: "PHI"},
		},
		Games: []domainplayoffs.BracketGame{
			{
				Round: domainplayoffs.RoundSuperBowl, RoundNumber: 4,
				Conference: domainplayoffs.ConferenceSuperBowl,
				HomeTeam:   "Kansas City Chiefs", AwayTeam: "Philadelphia Eagles",
				Status: domaingames.StateUpcoming,
			},
		},
	})

	svc := NewService(st, playoffs.NewEngine(nil))
	pic, err := svc.Picture(playoffs.SeasonTypePostseason)
	if err != nil {
		t.Fatalf("expected picture, got %v", err)
	}
	if pic.SeasonYear != 2024 || pic.SeasonType != playoffs.SeasonTypePostseason {
		t.Fatalf("unexpected picture header %+v", pic)
	}
	if len(pic.AFCTeams) != 2 || len(pic.NFCTeams) != 1 {
		t.Fatalf("unexpected team counts %d/%d", len(pic.AFCTeams), len(pic.NFCTeams))
	}
	if len(pic.SuperBowlTeams) != 2 {
		t.Fatalf("expected both Super Bowl participants, got %v", pic.SuperBowlTeams)
	}
}

func TestPictureUnavailableWhenCold(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), nil)

	if _, err := svc.Picture(playoffs.SeasonTypeRegular); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for standings, got %v", err)
	}
	if _, err := svc.Picture(playoffs.SeasonTypePostseason); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable for bracket, got %v", err)
	}
}

func TestBracketExposesStoredSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	svc := NewService(st, nil)

	if _, ok := svc.Bracket(); ok {
		t.Fatal("expected no bracket before first refresh")
	}

	st.SetBracket(domainplayoffs.Bracket{SeasonYear: 2024})
	bracket, ok := svc.Bracket()
	if !ok || bracket.SeasonYear != 2024 {
		t.Fatalf("unexpected bracket %+v ok=%v", bracket, ok)
	}
}
