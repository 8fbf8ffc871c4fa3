package gamemap

import (
	"fmt"
	"strings"
	"time"
)

// Map is a battlefield a game can be played on.
type Map struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (m Map) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("map name is required")
	}

	return nil
}
