package domain

import (
	"time"

	"github.com/google/uuid"
)

// Player is the rating ledger row for a user: the points/wins/losses
// aggregate mutated by game settlement and task completion.
type Player struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Points    int       `json:"points" gorm:"not null;default:0"`
	Wins      int       `json:"wins" gorm:"not null;default:0"`
	Losses    int       `json:"losses" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
