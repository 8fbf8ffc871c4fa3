package memory

import (
	"fmt"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/domain/team"
	"github.com/riskibarqy/league-admin/internal/platform/database"
)

// Store holds every table behind one lock so the repositories can enforce the
// same reference and uniqueness rules as the SQL schema.
type Store struct {
	mu  sync.RWMutex
	seq map[table]int64

	teams        map[int64]team.Team
	players      map[int64]player.Player
	civs         map[int64]civilization.Civilization
	maps         map[int64]gamemap.Map
	games        map[int64]game.Game
	participants map[int64]game.Participant
}

func NewStore() *Store {
	return &Store{
		seq:          make(map[table]int64),
		teams:        make(map[int64]team.Team),
		players:      make(map[int64]player.Player),
		civs:         make(map[int64]civilization.Civilization),
		maps:         make(map[int64]gamemap.Map),
		games:        make(map[int64]game.Game),
		participants: make(map[int64]game.Participant),
	}
}

func (s *Store) Teams() *TeamRepository {
	return &TeamRepository{store: s}
}

func (s *Store) Players() *PlayerRepository {
	return &PlayerRepository{store: s}
}

func (s *Store) Civilizations() *CivilizationRepository {
	return &CivilizationRepository{store: s}
}

func (s *Store) Maps() *MapRepository {
	return &MapRepository{store: s}
}

func (s *Store) Games() *GameRepository {
	return &GameRepository{store: s}
}

type table string

const (
	teamsTable        table = "teams"
	playersTable      table = "players"
	civsTable         table = "civs"
	mapsTable         table = "maps"
	gamesTable        table = "games"
	participantsTable table = "game_players"
)

// nextID hands out ids per table, like a SQL sequence. Must be called with mu
// held for writing.
func (s *Store) nextID(t table) int64 {
	s.seq[t]++
	return s.seq[t]
}

func referenceViolation(format string, args ...any) error {
	return crerr.Mark(fmt.Errorf(format, args...), database.ErrReferenceViolation)
}

func uniqueViolation(format string, args ...any) error {
	return crerr.Mark(fmt.Errorf(format, args...), database.ErrUniqueViolation)
}
