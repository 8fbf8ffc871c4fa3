package game

import (
	"fmt"
	"strings"
	"time"
)

// Ref is a resolved id/name pair for a record a game points at.
type Ref struct {
	ID   int64
	Name string
}

// Game is one match between a first-pick and a second-pick team.
// Players is only populated on single-game reads.
type Game struct {
	ID           int64
	FirstPickID  int64
	SecondPickID int64
	WinnerID     int64
	MapID        *int64
	DraftLink    *string
	GameDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	FirstPick  Ref
	SecondPick Ref
	Winner     Ref
	Map        *Ref
	Players    []Participant
}

// Participant is the per-game assignment of a player to a civilization and
// to the team the player represented in that game.
type Participant struct {
	ID        int64
	GameID    int64
	PlayerID  int64
	CivID     int64
	TeamID    int64
	CreatedAt time.Time
	UpdatedAt time.Time

	Player Ref
	Civ    Ref
	Team   Ref
}

// Descriptor is the caller-supplied (player, civilization, team) triple.
// Zero means the field was not provided.
type Descriptor struct {
	PlayerID int64
	CivID    int64
	TeamID   int64
}

func (d Descriptor) Complete() bool {
	return d.PlayerID > 0 && d.CivID > 0 && d.TeamID > 0
}

// CompleteDescriptors keeps the descriptors that carry all three references,
// preserving order.
func CompleteDescriptors(items []Descriptor) []Descriptor {
	out := make([]Descriptor, 0, len(items))
	for _, item := range items {
		if !item.Complete() {
			continue
		}
		out = append(out, item)
	}

	return out
}

func (g Game) Validate() error {
	if g.FirstPickID <= 0 {
		return fmt.Errorf("first pick team id is required")
	}
	if g.SecondPickID <= 0 {
		return fmt.Errorf("second pick team id is required")
	}
	if g.WinnerID <= 0 {
		return fmt.Errorf("winner team id is required")
	}
	if g.GameDate.IsZero() {
		return fmt.Errorf("game date is required")
	}
	if g.MapID != nil && *g.MapID <= 0 {
		return fmt.Errorf("map id must be positive when provided")
	}

	return nil
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp and
// returns it in UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("game date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("game date %q must be YYYY-MM-DD or RFC3339", raw)
}
