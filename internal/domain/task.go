package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a point-earning assignment for a single player. Completing it
// credits Points to the owner exactly once; the transition is terminal.
type Task struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Points    int       `json:"points" gorm:"not null"`
	PlayerID  uuid.UUID `json:"playerId" gorm:"type:uuid;not null;index"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"createdAt"`

	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}
