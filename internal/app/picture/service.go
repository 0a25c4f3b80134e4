package picture

import (
	"errors"

	domaingames "github.com/lightscore/nfl-playoff-service/internal/domain/games"
	domainplayoffs "github.com/lightscore/nfl-playoff-service/internal/domain/playoffs"
	domainstandings "github.com/lightscore/nfl-playoff-service/internal/domain/standings"
	"github.com/lightscore/nfl-playoff-service/internal/playoffs"
	"github.com/lightscore/nfl-playoff-service/internal/season"
)

// ErrUnavailable is returned when the snapshot needed for the requested
// season type has not been fetched yet.
var ErrUnavailable = errors.New("playoff picture not available")

// Store reads the snapshots the picture is computed from.
type Store interface {
	Standings() ([]domainstandings.TeamRecord, bool)
	Weekly() (domaingames.WeeklyResponse, bool)
	Bracket() (domainplayoffs.Bracket, bool)
}

// Service computes the playoff picture on demand. The season type selects
// the computation: the postseason code replays the bracket, everything
// else seeds from the regular-season standings.
type Service struct {
	store  Store
	engine *playoffs.Engine
}

// NewService constructs a Service around the given store and engine.
func NewService(store Store, engine *playoffs.Engine) *Service {
	if engine == nil {
		engine = playoffs.NewEngine(nil)
	}
	return &Service{store: store, engine: engine}
}

// Bracket returns the latest stored bracket.
func (s *Service) Bracket() (domainplayoffs.Bracket, bool) {
	return s.store.Bracket()
}

// Picture builds the playoff picture for the given season type. A zero
// season type defaults to the regular season.
func (s *Service) Picture(seasonType int) (domainplayoffs.Picture, error) {
	if seasonType == 0 {
		seasonType = playoffs.SeasonTypeRegular
	}

	if playoffs.ModeForSeasonType(seasonType) == playoffs.ModePostseason {
		return s.postseasonPicture(seasonType)
	}
	return s.regularSeasonPicture(seasonType)
}

func (s *Service) regularSeasonPicture(seasonType int) (domainplayoffs.Picture, error) {
	records, ok := s.store.Standings()
	if !ok {
		return domainplayoffs.Picture{}, ErrUnavailable
	}

	conferences := s.engine.RegularSeason(records)
	return domainplayoffs.Picture{
		SeasonYear:     s.seasonYear(),
		SeasonType:     seasonType,
		AFCTeams:       conferences.AFC,
		NFCTeams:       conferences.NFC,
		SuperBowlTeams: []string{},
	}, nil
}

func (s *Service) postseasonPicture(seasonType int) (domainplayoffs.Picture, error) {
	bracket, ok := s.store.Bracket()
	if !ok {
		return domainplayoffs.Picture{}, ErrUnavailable
	}

	conferences := s.engine.Postseason(bracket)
	return domainplayoffs.Picture{
		SeasonYear:     bracket.SeasonYear,
		SeasonType:     seasonType,
		AFCTeams:       conferences.AFC,
		NFCTeams:       conferences.NFC,
		SuperBowlTeams: playoffs.SuperBowlTeams(bracket.Games),
	}, nil
}

// seasonYear prefers the stored weekly context; without one it falls back
// to the default season year.
func (s *Service) seasonYear() int {
	if weekly, ok := s.store.Weekly(); ok && weekly.Context.Year > 0 {
		return weekly.Context.Year
	}
	return season.DefaultYear
}
