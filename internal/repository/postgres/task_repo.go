package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"gorm.io/gorm"
)

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *taskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Player.User").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.WithContext(ctx).
		Preload("Player").
		Preload("Player.User").
		Order("completed ASC, created_at DESC").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Complete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Claim the pending->completed flip first; the row lock it takes
		// serializes concurrent completers, and the loser sees zero rows.
		res := tx.Model(&domain.Task{}).
			Where("id = ? AND completed = ?", id, false).
			Update("completed", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrTaskNotFound
		}

		var task domain.Task
		if err := tx.First(&task, "id = ?", id).Error; err != nil {
			return err
		}

		// Task rewards have no floor, unlike the loss penalty.
		return tx.Model(&domain.Player{}).
			Where("id = ?", task.PlayerID).
			Update("points", gorm.Expr("points + ?", task.Points)).Error
	})
}

// Delete is unconditional: completing state is not checked and already
// credited points are not clawed back.
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error
}
