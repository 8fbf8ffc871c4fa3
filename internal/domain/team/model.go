package team

import (
	"fmt"
	"strings"
	"time"
)

// Team is a roster that players belong to and that plays games.
type Team struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ref is the id/name pair embedded wherever another record points at a team.
type Ref struct {
	ID   int64
	Name string
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
