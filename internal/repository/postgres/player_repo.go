package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"gorm.io/gorm"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).
		First(&player, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) List(ctx context.Context) ([]*domain.Player, error) {
	var players []*domain.Player
	err := r.db.WithContext(ctx).
		Joins("User").
		Order(`players.points DESC, "User".name ASC`).
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Rank(ctx context.Context, playerID uuid.UUID) (int, error) {
	var count int64
	subquery := r.db.Model(&domain.Player{}).
		Select("points").
		Where("id = ?", playerID)
	err := r.db.WithContext(ctx).Model(&domain.Player{}).
		Where("points > (?)", subquery).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}
