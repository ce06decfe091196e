package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/repository"
)

var ErrGameNameRequired = errors.New("game name is required")

// GameService owns the game lifecycle: a game is created active with its
// two rosters, and settles exactly once into completed, moving points.
type GameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) *GameService {
	return &GameService{gameRepo: gameRepo}
}

type TeamSpec struct {
	Name    string
	Color   string
	Players []uuid.UUID
}

type CreateGameInput struct {
	Name  string
	Teams []TeamSpec
}

func (s *GameService) CreateGame(ctx context.Context, input CreateGameInput) (*domain.Game, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrGameNameRequired
	}

	game := &domain.Game{
		ID:        uuid.New(),
		Name:      name,
		Status:    domain.GameStatusActive,
		CreatedAt: time.Now(),
	}
	for _, spec := range input.Teams {
		team := domain.Team{
			ID:     uuid.New(),
			GameID: game.ID,
			Name:   spec.Name,
			Color:  spec.Color,
		}
		for _, playerID := range spec.Players {
			team.Players = append(team.Players, domain.TeamPlayer{
				TeamID:   team.ID,
				PlayerID: playerID,
			})
		}
		game.Teams = append(game.Teams, team)
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) ListGames(ctx context.Context) ([]*domain.Game, error) {
	return s.gameRepo.List(ctx)
}

// SettleGame finalizes a game: the winning roster earns 100 points per
// beaten player plus a win, the losing roster pays a flat 100 (floored at
// zero) plus a loss, and the game transitions to completed. All of it
// commits atomically; a game that already settled cannot settle again.
func (s *GameService) SettleGame(ctx context.Context, gameID, winnerTeamID uuid.UUID) error {
	teams, err := s.gameRepo.TeamsByGame(ctx, gameID)
	if err != nil {
		return err
	}
	if len(teams) != 2 {
		return domain.ErrTeamCountInvalid
	}

	var loserTeamID uuid.UUID
	winnerFound := false
	for _, team := range teams {
		if team.ID == winnerTeamID {
			winnerFound = true
		} else {
			loserTeamID = team.ID
		}
	}
	if !winnerFound {
		return domain.ErrWinnerNotInGame
	}

	loserCount, err := s.gameRepo.RosterCount(ctx, loserTeamID)
	if err != nil {
		return err
	}

	winnerDelta := domain.WinPointsPerLoser * int(loserCount)
	loserDelta := -domain.LossPenalty

	return s.gameRepo.Settle(ctx, gameID, winnerTeamID, loserTeamID, winnerDelta, loserDelta)
}
