package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"gorm.io/gorm"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *gameRepository {
	return &gameRepository{db: db}
}

// Create inserts the game together with its teams and rosters. gorm runs
// the association inserts in a single transaction, so a failed roster row
// rolls back the whole game.
func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var game domain.Game
	err := r.db.WithContext(ctx).
		Preload("Teams").
		First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) List(ctx context.Context) ([]*domain.Game, error) {
	var games []*domain.Game
	err := r.db.WithContext(ctx).
		Preload("Teams.Players.Player.User").
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) TeamsByGame(ctx context.Context, gameID uuid.UUID) ([]*domain.Team, error) {
	var teams []*domain.Team
	err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *gameRepository) RosterCount(ctx context.Context, teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.TeamPlayer{}).
		Where("team_id = ?", teamID).
		Count(&count).Error
	return count, err
}

func (r *gameRepository) Settle(ctx context.Context, gameID, winnerTeamID, loserTeamID uuid.UUID, winnerDelta, loserDelta int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Claim the active->completed transition. The conditional update is
		// the linearization point: of two concurrent settlers, exactly one
		// sees RowsAffected == 1.
		res := tx.Model(&domain.Game{}).
			Where("id = ? AND status = ?", gameID, domain.GameStatusActive).
			Updates(map[string]interface{}{
				"status":         domain.GameStatusCompleted,
				"winner_team_id": winnerTeamID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrGameNotActive
		}

		winnerRoster := tx.Model(&domain.TeamPlayer{}).
			Select("player_id").
			Where("team_id = ?", winnerTeamID)
		if err := tx.Model(&domain.Player{}).
			Where("id IN (?)", winnerRoster).
			Updates(map[string]interface{}{
				"points": gorm.Expr("points + ?", winnerDelta),
				"wins":   gorm.Expr("wins + 1"),
			}).Error; err != nil {
			return err
		}

		// The loss penalty is floored at zero.
		loserRoster := tx.Model(&domain.TeamPlayer{}).
			Select("player_id").
			Where("team_id = ?", loserTeamID)
		return tx.Model(&domain.Player{}).
			Where("id IN (?)", loserRoster).
			Updates(map[string]interface{}{
				"points": gorm.Expr("GREATEST(points + ?, 0)", loserDelta),
				"losses": gorm.Expr("losses + 1"),
			}).Error
	})
}
