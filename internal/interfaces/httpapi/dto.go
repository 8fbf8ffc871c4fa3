package httpapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/league-admin/internal/domain/civilization"
	"github.com/riskibarqy/league-admin/internal/domain/game"
	"github.com/riskibarqy/league-admin/internal/domain/gamemap"
	"github.com/riskibarqy/league-admin/internal/domain/player"
	"github.com/riskibarqy/league-admin/internal/domain/team"
	"github.com/riskibarqy/league-admin/internal/usecase"
)

// flexID accepts a JSON number or a numeric string, as sent by HTML selects.
// null and "" decode to zero.
type flexID int64

func (v *flexID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*v = 0
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid id %s", raw)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*v = 0
			return nil
		}
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("id must be an integer, got %s", b)
	}
	*v = flexID(n)
	return nil
}

type teamRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type playerRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	TeamID flexID `json:"teamId" validate:"required,gt=0"`
}

type civilizationRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type mapRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type gamePlayerRequest struct {
	PlayerID flexID `json:"playerId"`
	CivID    flexID `json:"civId"`
	TeamID   flexID `json:"teamId"`
}

type gameRequest struct {
	FirstPickID  flexID               `json:"firstPickId" validate:"required,gt=0"`
	SecondPickID flexID               `json:"secondPickId" validate:"required,gt=0"`
	WinnerID     flexID               `json:"winnerId" validate:"required,gt=0"`
	MapID        *flexID              `json:"mapId" validate:"omitempty,gt=0"`
	DraftLink    *string              `json:"draftLink" validate:"omitempty,max=2048"`
	GameDate     string               `json:"gameDate" validate:"required"`
	Players      *[]gamePlayerRequest `json:"players"`

	hasMap       bool
	hasDraftLink bool
}

// UnmarshalJSON also records whether mapId and draftLink were sent at all,
// so an update that omits them keeps the stored values.
func (r *gameRequest) UnmarshalJSON(b []byte) error {
	type plain gameRequest
	var body plain
	if err := sonic.Unmarshal(b, &body); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := sonic.Unmarshal(b, &keys); err != nil {
		return err
	}

	*r = gameRequest(body)
	_, r.hasMap = keys["mapId"]
	_, r.hasDraftLink = keys["draftLink"]
	return nil
}

// normalize treats an unselected map (0 or "") as no map.
func (r *gameRequest) normalize() {
	if r.MapID != nil && *r.MapID == 0 {
		r.MapID = nil
	}
}

func (r gameRequest) toInput() usecase.GameInput {
	in := usecase.GameInput{
		FirstPickID:  int64(r.FirstPickID),
		SecondPickID: int64(r.SecondPickID),
		WinnerID:     int64(r.WinnerID),
		SetMap:       r.hasMap,
		DraftLink:    r.DraftLink,
		SetDraftLink: r.hasDraftLink,
		GameDate:     r.GameDate,
	}
	if r.MapID != nil {
		mapID := int64(*r.MapID)
		in.MapID = &mapID
	}
	if r.Players != nil {
		in.ReplacePlayers = true
		in.Players = make([]game.Descriptor, 0, len(*r.Players))
		for _, p := range *r.Players {
			in.Players = append(in.Players, game.Descriptor{
				PlayerID: int64(p.PlayerID),
				CivID:    int64(p.CivID),
				TeamID:   int64(p.TeamID),
			})
		}
	}

	return in
}

type refDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type teamDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type playerDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TeamID    int64     `json:"teamId"`
	Team      refDTO    `json:"team"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type civilizationDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type mapDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type gameSummaryDTO struct {
	ID           int64     `json:"id"`
	FirstPickID  int64     `json:"firstPickId"`
	SecondPickID int64     `json:"secondPickId"`
	WinnerID     int64     `json:"winnerId"`
	MapID        *int64    `json:"mapId,omitempty"`
	DraftLink    *string   `json:"draftLink,omitempty"`
	GameDate     string    `json:"gameDate"`
	FirstPick    refDTO    `json:"firstPick"`
	SecondPick   refDTO    `json:"secondPick"`
	Winner       refDTO    `json:"winner"`
	Map          *refDTO   `json:"map,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type gamePlayerDTO struct {
	ID       int64  `json:"id"`
	GameID   int64  `json:"gameId"`
	PlayerID int64  `json:"playerId"`
	CivID    int64  `json:"civId"`
	TeamID   int64  `json:"teamId"`
	Player   refDTO `json:"player"`
	Civ      refDTO `json:"civ"`
	Team     refDTO `json:"team"`
}

type gameDTO struct {
	gameSummaryDTO
	Players []gamePlayerDTO `json:"players"`
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:        item.ID,
		Name:      item.Name,
		TeamID:    item.TeamID,
		Team:      refDTO{ID: item.Team.ID, Name: item.Team.Name},
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func civilizationToDTO(item civilization.Civilization) civilizationDTO {
	return civilizationDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func mapToDTO(item gamemap.Map) mapDTO {
	return mapDTO{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt.UTC(),
		UpdatedAt: item.UpdatedAt.UTC(),
	}
}

func gameRef(ref game.Ref) refDTO {
	return refDTO{ID: ref.ID, Name: ref.Name}
}

func gameSummaryToDTO(item game.Game) gameSummaryDTO {
	out := gameSummaryDTO{
		ID:           item.ID,
		FirstPickID:  item.FirstPickID,
		SecondPickID: item.SecondPickID,
		WinnerID:     item.WinnerID,
		MapID:        item.MapID,
		DraftLink:    item.DraftLink,
		GameDate:     item.GameDate.UTC().Format(time.RFC3339),
		FirstPick:    gameRef(item.FirstPick),
		SecondPick:   gameRef(item.SecondPick),
		Winner:       gameRef(item.Winner),
		CreatedAt:    item.CreatedAt.UTC(),
		UpdatedAt:    item.UpdatedAt.UTC(),
	}
	if item.Map != nil {
		ref := gameRef(*item.Map)
		out.Map = &ref
	}

	return out
}

func gameToDTO(item game.Game) gameDTO {
	players := make([]gamePlayerDTO, 0, len(item.Players))
	for _, p := range item.Players {
		players = append(players, gamePlayerDTO{
			ID:       p.ID,
			GameID:   p.GameID,
			PlayerID: p.PlayerID,
			CivID:    p.CivID,
			TeamID:   p.TeamID,
			Player:   gameRef(p.Player),
			Civ:      gameRef(p.Civ),
			Team:     gameRef(p.Team),
		})
	}

	return gameDTO{
		gameSummaryDTO: gameSummaryToDTO(item),
		Players:        players,
	}
}

func mapSlice[T, D any](items []T, fn func(T) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
