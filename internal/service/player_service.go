package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/repository"
)

type PlayerService struct {
	playerRepo repository.PlayerRepository
	userRepo   repository.UserRepository
}

func NewPlayerService(playerRepo repository.PlayerRepository, userRepo repository.UserRepository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		userRepo:   userRepo,
	}
}

type Profile struct {
	User   *domain.User
	Player *domain.Player
	Rank   int
}

// Leaderboard returns every player ordered by points descending, user
// name ascending as tie-break.
func (s *PlayerService) Leaderboard(ctx context.Context) ([]*domain.Player, error) {
	return s.playerRepo.List(ctx)
}

// Profile returns a user's ledger aggregate with their competition rank:
// 1 + the number of players with strictly more points, so tied players
// share a rank.
func (s *PlayerService) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rank, err := s.playerRepo.Rank(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, Player: player, Rank: rank}, nil
}
