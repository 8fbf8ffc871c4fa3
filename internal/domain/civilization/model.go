package civilization

import (
	"fmt"
	"strings"
	"time"
)

// Civilization is a playable faction picked by a participant in a game.
type Civilization struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (c Civilization) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("civilization name is required")
	}

	return nil
}
