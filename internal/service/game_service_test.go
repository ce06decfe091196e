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

func TestGameService_CreateGame(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	gameService := service.NewGameService(repos.Game)
	ctx := context.Background()

	_, p1 := testutil.NewUserBuilder().Build(t, testDB.DB)
	_, p2 := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.CreateGameInput
		wantErr error
	}{
		{
			name: "successful creation with two teams",
			input: service.CreateGameInput{
				Name: "Friday Skirmish",
				Teams: []service.TeamSpec{
					{Name: "Red", Color: "#ff0000", Players: []uuid.UUID{p1.ID}},
					{Name: "Blue", Color: "#0000ff", Players: []uuid.UUID{p2.ID}},
				},
			},
		},
		{
			name:    "empty name is rejected",
			input:   service.CreateGameInput{Name: "   "},
			wantErr: service.ErrGameNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := gameService.CreateGame(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.GameStatusActive, game.Status)
			assert.Nil(t, game.WinnerTeamID)

			teams, err := repos.Game.TeamsByGame(ctx, game.ID)
			require.NoError(t, err)
			assert.Len(t, teams, 2)

			for _, team := range teams {
				count, err := repos.Game.RosterCount(ctx, team.ID)
				require.NoError(t, err)
				assert.EqualValues(t, 1, count)
			}
		})
	}
}

func TestGameService_SettleGame(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	gameService := service.NewGameService(repos.Game)
	ctx := context.Background()

	// Team Red (2 players) vs Team Blue (1 player), winner Red:
	// each Red player earns 100 * 1, the Blue player pays 100 floored at 0.
	_, red1 := testutil.NewUserBuilder().WithPoints(200).Build(t, testDB.DB)
	_, red2 := testutil.NewUserBuilder().WithPoints(0).Build(t, testDB.DB)
	_, blue1 := testutil.NewUserBuilder().WithPoints(40).Build(t, testDB.DB)

	game := testutil.NewGameBuilder().
		WithName("Final").
		WithTeam("Red", "#ff0000", red1, red2).
		WithTeam("Blue", "#0000ff", blue1).
		Build(t, testDB.DB)

	winnerTeamID := game.Teams[0].ID

	err := gameService.SettleGame(ctx, game.ID, winnerTeamID)
	require.NoError(t, err)

	settled, err := repos.Game.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusCompleted, settled.Status)
	require.NotNil(t, settled.WinnerTeamID)
	assert.Equal(t, winnerTeamID, *settled.WinnerTeamID)

	for _, winner := range []struct {
		id     uuid.UUID
		points int
	}{
		{red1.ID, 300},
		{red2.ID, 100},
	} {
		player, err := repos.Player.GetByID(ctx, winner.id)
		require.NoError(t, err)
		assert.Equal(t, winner.points, player.Points)
		assert.Equal(t, 1, player.Wins)
		assert.Equal(t, 0, player.Losses)
	}

	// 40 - 100 floors at 0
	loser, err := repos.Player.GetByID(ctx, blue1.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, loser.Points)
	assert.Equal(t, 0, loser.Wins)
	assert.Equal(t, 1, loser.Losses)
}

func TestGameService_SettleGame_RewardScalesWithLoserCount(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	gameService := service.NewGameService(repos.Game)
	ctx := context.Background()

	_, winner := testutil.NewUserBuilder().WithPoints(0).Build(t, testDB.DB)
	_, loser1 := testutil.NewUserBuilder().WithPoints(500).Build(t, testDB.DB)
	_, loser2 := testutil.NewUserBuilder().WithPoints(500).Build(t, testDB.DB)
	_, loser3 := testutil.NewUserBuilder().WithPoints(500).Build(t, testDB.DB)

	game := testutil.NewGameBuilder().
		WithTeam("Solo", "gold", winner).
		WithTeam("Trio", "silver", loser1, loser2, loser3).
		Build(t, testDB.DB)

	require.NoError(t, gameService.SettleGame(ctx, game.ID, game.Teams[0].ID))

	// 100 points per beaten player
	player, err := repos.Player.GetByID(ctx, winner.ID)
	require.NoError(t, err)
	assert.Equal(t, 300, player.Points)

	// each loser pays the flat penalty regardless of team sizes
	for _, id := range []uuid.UUID{loser1.ID, loser2.ID, loser3.ID} {
		player, err := repos.Player.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 400, player.Points)
		assert.Equal(t, 1, player.Losses)
	}
}

func TestGameService_SettleGame_RequiresTwoTeams(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	gameService := service.NewGameService(repos.Game)
	ctx := context.Background()

	_, p1 := testutil.NewUserBuilder().WithPoints(100).Build(t, testDB.DB)
	_, p2 := testutil.NewUserBuilder().WithPoints(100).Build(t, testDB.DB)
	_, p3 := testutil.NewUserBuilder().WithPoints(100).Build(t, testDB.DB)

	oneTeam := testutil.NewGameBuilder().
		WithTeam("Lonely", "grey", p1).
		Build(t, testDB.DB)
	threeTeams := testutil.NewGameBuilder().
		WithTeam("A", "red", p1).
		WithTeam("B", "blue", p2).
		WithTeam("C", "green", p3).
		Build(t, testDB.DB)

	tests := []struct {
		name         string
		gameID       uuid.UUID
		winnerTeamID uuid.UUID
	}{
		{"one team", oneTeam.ID, oneTeam.Teams[0].ID},
		{"three teams", threeTeams.ID, threeTeams.Teams[0].ID},
		{"unknown game", uuid.New(), uuid.New()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gameService.SettleGame(ctx, tt.gameID, tt.winnerTeamID)
			assert.ErrorIs(t, err, domain.ErrTeamCountInvalid)
		})
	}

	// No points moved
	for _, id := range []uuid.UUID{p1.ID, p2.ID, p3.ID} {
		player, err := repos.Player.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 100, player.Points)
		assert.Equal(t, 0, player.Wins)
		assert.Equal(t, 0, player.Losses)
	}
}

func TestGameService_SettleGame_WinnerMustBelongToGame(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	gameService := service.NewGameService(repos.Game)
	ctx := context.Background()

	_, p1 := testutil.NewUserBuilder().Build(t, testDB.DB)
	_, p2 := testutil.NewUserBuilder().Build(t, testDB.DB)

	game := testutil.NewGameBuilder().
		WithTeam("Red", "red", p1).
		WithTeam("Blue", "blue", p2).
		Build(t, testDB.DB)

	err := gameService.SettleGame(ctx, game.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrWinnerNotInGame)

	unsettled, err := repos.Game.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.GameStatusActive, unsettled.Status)
}

func TestGameService_SettleGame_Twice(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	gameService := service.NewGameService(repos.Game)
	ctx := context.Background()

	_, p1 := testutil.NewUserBuilder().WithPoints(0).Build(t, testDB.DB)
	_, p2 := testutil.NewUserBuilder().WithPoints(300).Build(t, testDB.DB)

	game := testutil.NewGameBuilder().
		WithTeam("Red", "red", p1).
		WithTeam("Blue", "blue", p2).
		Build(t, testDB.DB)

	require.NoError(t, gameService.SettleGame(ctx, game.ID, game.Teams[0].ID))

	err := gameService.SettleGame(ctx, game.ID, game.Teams[0].ID)
	assert.ErrorIs(t, err, domain.ErrGameNotActive)

	// Effect applied exactly once
	winner, err := repos.Player.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, winner.Points)
	assert.Equal(t, 1, winner.Wins)

	loser, err := repos.Player.GetByID(ctx, p2.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, loser.Points)
	assert.Equal(t, 1, loser.Losses)
}
