package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
)

type UserRepository interface {
	// CreateWithPlayer inserts the user and its zeroed ledger row atomically.
	CreateWithPlayer(ctx context.Context, user *domain.User, player *domain.Player) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// GetActiveByToken returns the session for token if it has not expired.
	GetActiveByToken(ctx context.Context, token string) (*domain.Session, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type PlayerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Player, error)
	// List returns the ledger ordered by points descending, user name
	// ascending as the tie-break, with users preloaded.
	List(ctx context.Context) ([]*domain.Player, error)
	// Rank is competition-style: 1 + count of players with strictly more points.
	Rank(ctx context.Context, playerID uuid.UUID) (int, error)
}

type GameRepository interface {
	// Create inserts the game with its teams and rosters in one transaction.
	Create(ctx context.Context, game *domain.Game) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	TeamsByGame(ctx context.Context, gameID uuid.UUID) ([]*domain.Team, error)
	RosterCount(ctx context.Context, teamID uuid.UUID) (int64, error)
	// Settle atomically claims the active->completed transition and applies
	// the point deltas to both rosters. Returns domain.ErrGameNotActive if
	// the claim finds no active game, leaving everything untouched.
	Settle(ctx context.Context, gameID, winnerTeamID, loserTeamID uuid.UUID, winnerDelta, loserDelta int) error
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	// Complete atomically flips completed and credits the owner's points.
	// Returns domain.ErrTaskNotFound if the task is missing or already done.
	Complete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Player  PlayerRepository
	Game    GameRepository
	Task    TaskRepository
}
