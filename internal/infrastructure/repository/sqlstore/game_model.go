package sqlstore

import (
	"time"

	"github.com/riskibarqy/league-admin/internal/domain/game"
)

var gameSummaryColumns = []string{
	"g.id", "g.first_pick_id", "g.second_pick_id", "g.winner_id", "g.map_id",
	"g.draft_link", "g.game_date", "g.created_at", "g.updated_at",
	"fp.name AS first_pick_name",
	"sp.name AS second_pick_name",
	"w.name AS winner_name",
	"m.name AS map_name",
}

var participantColumns = []string{
	"gp.id", "gp.game_id", "gp.player_id", "gp.civ_id", "gp.team_id",
	"gp.created_at", "gp.updated_at",
	"p.name AS player_name",
	"c.name AS civ_name",
	"t.name AS team_name",
}

type gameTableModel struct {
	ID           int64     `db:"id,auto"`
	FirstPickID  int64     `db:"first_pick_id"`
	SecondPickID int64     `db:"second_pick_id"`
	WinnerID     int64     `db:"winner_id"`
	MapID        *int64    `db:"map_id"`
	DraftLink    *string   `db:"draft_link"`
	GameDate     time.Time `db:"game_date"`
	CreatedAt    time.Time `db:"created_at,immutable"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type gameSummaryRow struct {
	gameTableModel
	FirstPickName  string  `db:"first_pick_name"`
	SecondPickName string  `db:"second_pick_name"`
	WinnerName     string  `db:"winner_name"`
	MapName        *string `db:"map_name"`
}

type participantTableModel struct {
	ID        int64     `db:"id,auto"`
	GameID    int64     `db:"game_id"`
	PlayerID  int64     `db:"player_id"`
	CivID     int64     `db:"civ_id"`
	TeamID    int64     `db:"team_id"`
	CreatedAt time.Time `db:"created_at,immutable"`
	UpdatedAt time.Time `db:"updated_at"`
}

type participantRow struct {
	participantTableModel
	PlayerName string `db:"player_name"`
	CivName    string `db:"civ_name"`
	TeamName   string `db:"team_name"`
}

func newGameTableModel(item game.Game) gameTableModel {
	return gameTableModel{
		ID:           item.ID,
		FirstPickID:  item.FirstPickID,
		SecondPickID: item.SecondPickID,
		WinnerID:     item.WinnerID,
		MapID:        item.MapID,
		DraftLink:    item.DraftLink,
		GameDate:     utc(item.GameDate),
		CreatedAt:    utc(item.CreatedAt),
		UpdatedAt:    utc(item.UpdatedAt),
	}
}

func newParticipantTableModel(gameID int64, item game.Participant) participantTableModel {
	return participantTableModel{
		GameID:    gameID,
		PlayerID:  item.PlayerID,
		CivID:     item.CivID,
		TeamID:    item.TeamID,
		CreatedAt: utc(item.CreatedAt),
		UpdatedAt: utc(item.UpdatedAt),
	}
}

func (r gameSummaryRow) toDomain() game.Game {
	out := game.Game{
		ID:           r.ID,
		FirstPickID:  r.FirstPickID,
		SecondPickID: r.SecondPickID,
		WinnerID:     r.WinnerID,
		MapID:        r.MapID,
		DraftLink:    r.DraftLink,
		GameDate:     utc(r.GameDate),
		CreatedAt:    utc(r.CreatedAt),
		UpdatedAt:    utc(r.UpdatedAt),
		FirstPick:    game.Ref{ID: r.FirstPickID, Name: r.FirstPickName},
		SecondPick:   game.Ref{ID: r.SecondPickID, Name: r.SecondPickName},
		Winner:       game.Ref{ID: r.WinnerID, Name: r.WinnerName},
	}
	if r.MapID != nil {
		ref := game.Ref{ID: *r.MapID}
		if r.MapName != nil {
			ref.Name = *r.MapName
		}
		out.Map = &ref
	}
	return out
}

func (r participantRow) toDomain() game.Participant {
	return game.Participant{
		ID:        r.ID,
		GameID:    r.GameID,
		PlayerID:  r.PlayerID,
		CivID:     r.CivID,
		TeamID:    r.TeamID,
		CreatedAt: utc(r.CreatedAt),
		UpdatedAt: utc(r.UpdatedAt),
		Player:    game.Ref{ID: r.PlayerID, Name: r.PlayerName},
		Civ:       game.Ref{ID: r.CivID, Name: r.CivName},
		Team:      game.Ref{ID: r.TeamID, Name: r.TeamName},
	}
}
