package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameStatus string

const (
	GameStatusActive    GameStatus = "active"
	GameStatusCompleted GameStatus = "completed"
)

// Settlement arithmetic: winners earn WinPointsPerLoser for every player
// on the beaten team, losers pay a flat LossPenalty floored at zero.
const (
	WinPointsPerLoser = 100
	LossPenalty       = 100
)

type Game struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string     `json:"name" gorm:"not null"`
	Status       GameStatus `json:"status" gorm:"not null;default:'active'"`
	WinnerTeamID *uuid.UUID `json:"winnerTeamId" gorm:"type:uuid"`
	CreatedAt    time.Time  `json:"createdAt"`

	Teams []Team `json:"teams,omitempty" gorm:"foreignKey:GameID"`
}

// Team is created only alongside its game and is immutable afterward.
type Team struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GameID uuid.UUID `json:"gameId" gorm:"type:uuid;not null;index"`
	Name   string    `json:"name" gorm:"not null"`
	Color  string    `json:"color"`

	Players []TeamPlayer `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}

// TeamPlayer links a player to a team roster for one game.
type TeamPlayer struct {
	TeamID   uuid.UUID `json:"teamId" gorm:"type:uuid;primaryKey"`
	PlayerID uuid.UUID `json:"playerId" gorm:"type:uuid;primaryKey"`

	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}
