package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/repository/postgres"
	"github.com/strikbal/rating-backend/internal/service"
	"github.com/strikbal/rating-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskService_CreateTask(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task, repos.Player)
	ctx := context.Background()

	_, player := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.CreateTaskInput
		wantErr error
	}{
		{
			name:  "successful creation",
			input: service.CreateTaskInput{Name: "Clean gear", Points: 50, PlayerID: player.ID},
		},
		{
			name:    "empty name",
			input:   service.CreateTaskInput{Name: "  ", Points: 50, PlayerID: player.ID},
			wantErr: service.ErrTaskFieldsRequired,
		},
		{
			name:    "zero points",
			input:   service.CreateTaskInput{Name: "Clean gear", Points: 0, PlayerID: player.ID},
			wantErr: service.ErrTaskFieldsRequired,
		},
		{
			name:    "missing player",
			input:   service.CreateTaskInput{Name: "Clean gear", Points: 50},
			wantErr: service.ErrTaskFieldsRequired,
		},
		{
			name:    "unknown player",
			input:   service.CreateTaskInput{Name: "Clean gear", Points: 50, PlayerID: uuid.New()},
			wantErr: service.ErrTaskFieldsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := taskService.CreateTask(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.False(t, task.Completed)
			assert.Equal(t, 50, task.Points)
			assert.Equal(t, player.ID, task.PlayerID)
		})
	}
}

func TestTaskService_CompleteTask(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task, repos.Player)
	ctx := context.Background()

	// "Clean gear" worth 50 points owned by a player with 20 points
	_, player := testutil.NewUserBuilder().WithPoints(20).Build(t, testDB.DB)
	task := testutil.NewTaskBuilder().
		WithName("Clean gear").
		WithPoints(50).
		WithPlayer(player).
		Build(t, testDB.DB)

	require.NoError(t, taskService.CompleteTask(ctx, task.ID))

	credited, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, credited.Points)

	completed, err := repos.Task.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, completed.Completed)

	// Completing again fails and credits nothing
	err = taskService.CompleteTask(ctx, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	unchanged, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, unchanged.Points)
}

func TestTaskService_CompleteTask_NegativeReward(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task, repos.Player)
	ctx := context.Background()

	// Task rewards have no floor: a penalty task can drive points negative.
	_, player := testutil.NewUserBuilder().WithPoints(30).Build(t, testDB.DB)
	task := testutil.NewTaskBuilder().
		WithPoints(-50).
		WithPlayer(player).
		Build(t, testDB.DB)

	require.NoError(t, taskService.CompleteTask(ctx, task.ID))

	debited, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, -20, debited.Points)
}

func TestTaskService_CompleteTask_Rejections(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task, repos.Player)
	ctx := context.Background()

	_, player := testutil.NewUserBuilder().WithPoints(10).Build(t, testDB.DB)
	done := testutil.NewTaskBuilder().
		WithPoints(100).
		WithPlayer(player).
		Completed().
		Build(t, testDB.DB)

	tests := []struct {
		name   string
		taskID uuid.UUID
	}{
		{"already completed", done.ID},
		{"unknown task", uuid.New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := taskService.CompleteTask(ctx, tt.taskID)
			assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		})
	}

	unchanged, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, unchanged.Points)
}

func TestTaskService_DeleteTask(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	taskService := service.NewTaskService(repos.Task, repos.Player)
	ctx := context.Background()

	_, player := testutil.NewUserBuilder().WithPoints(0).Build(t, testDB.DB)
	task := testutil.NewTaskBuilder().
		WithPoints(80).
		WithPlayer(player).
		Build(t, testDB.DB)

	require.NoError(t, taskService.CompleteTask(ctx, task.ID))
	require.NoError(t, taskService.DeleteTask(ctx, task.ID))

	_, err := repos.Task.GetByID(ctx, task.ID)
	assert.Error(t, err)

	// Deleting a completed task does not claw back the credited points
	kept, err := repos.Player.GetByID(ctx, player.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, kept.Points)

	// Deleting an unknown id is a no-op
	assert.NoError(t, taskService.DeleteTask(ctx, uuid.New()))
}
