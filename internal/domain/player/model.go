package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/team"
)

// Player is a league member who currently belongs to one team.
type Player struct {
	ID        int64
	Name      string
	TeamID    int64
	Team      team.Ref
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}

	return nil
}
