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

var ErrTaskFieldsRequired = errors.New("task name, points and player are required")

type TaskService struct {
	taskRepo   repository.TaskRepository
	playerRepo repository.PlayerRepository
}

func NewTaskService(taskRepo repository.TaskRepository, playerRepo repository.PlayerRepository) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		playerRepo: playerRepo,
	}
}

type CreateTaskInput struct {
	Name     string
	Points   int
	PlayerID uuid.UUID
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Points == 0 || input.PlayerID == uuid.Nil {
		return nil, ErrTaskFieldsRequired
	}

	if _, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return nil, ErrTaskFieldsRequired
	}

	task := &domain.Task{
		ID:        uuid.New(),
		Name:      name,
		Points:    input.Points,
		PlayerID:  input.PlayerID,
		Completed: false,
		CreatedAt: time.Now(),
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return s.taskRepo.List(ctx)
}

// CompleteTask credits the task's points to its owner and flips the task
// to completed, atomically. A missing or already completed task yields
// domain.ErrTaskNotFound and no credit.
func (s *TaskService) CompleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.taskRepo.Complete(ctx, taskID)
}

// DeleteTask removes the task unconditionally. Points already credited by
// a completed task stay on the player's ledger.
func (s *TaskService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	return s.taskRepo.Delete(ctx, taskID)
}
