package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	name     string
	password string
	isAdmin  bool
	points   int
	wins     int
	losses   int
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		email:    fmt.Sprintf("user_%s@example.com", suffix),
		name:     fmt.Sprintf("testuser_%s", suffix),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// WithAdmin marks the user as an administrator
func (b *UserBuilder) WithAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

// WithPoints seeds the ledger with points
func (b *UserBuilder) WithPoints(points int) *UserBuilder {
	b.points = points
	return b
}

// WithRecord seeds the ledger win/loss counters
func (b *UserBuilder) WithRecord(wins, losses int) *UserBuilder {
	b.wins = wins
	b.losses = losses
	return b
}

// Build creates the user and its player row in the database
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, *domain.Player) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		Name:         b.name,
		IsAdmin:      b.isAdmin,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	player := &domain.Player{
		ID:        uuid.New(),
		UserID:    user.ID,
		Points:    b.points,
		Wins:      b.wins,
		Losses:    b.losses,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return user, player
}

// BuildWithSession creates the user plus a live session and returns the
// bearer token alongside
func (b *UserBuilder) BuildWithSession(t *testing.T, db *gorm.DB) (*domain.User, *domain.Player, string) {
	t.Helper()

	user, player := b.Build(t, db)

	token := fmt.Sprintf("test-token-%s", uuid.New().String())
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	return user, player, token
}

// GameBuilder creates test games with teams and rosters
type GameBuilder struct {
	name  string
	teams []gameBuilderTeam
}

type gameBuilderTeam struct {
	name    string
	color   string
	players []*domain.Player
}

// NewGameBuilder creates a new GameBuilder with default values
func NewGameBuilder() *GameBuilder {
	return &GameBuilder{
		name: fmt.Sprintf("game_%s", uuid.New().String()[:8]),
	}
}

// WithName sets the game name
func (b *GameBuilder) WithName(name string) *GameBuilder {
	b.name = name
	return b
}

// WithTeam adds a team with the given roster
func (b *GameBuilder) WithTeam(name, color string, players ...*domain.Player) *GameBuilder {
	b.teams = append(b.teams, gameBuilderTeam{name: name, color: color, players: players})
	return b
}

// Build creates the game, its teams and memberships in the database
func (b *GameBuilder) Build(t *testing.T, db *gorm.DB) *domain.Game {
	t.Helper()

	game := &domain.Game{
		ID:        uuid.New(),
		Name:      b.name,
		Status:    domain.GameStatusActive,
		CreatedAt: time.Now(),
	}
	for _, teamSpec := range b.teams {
		team := domain.Team{
			ID:     uuid.New(),
			GameID: game.ID,
			Name:   teamSpec.name,
			Color:  teamSpec.color,
		}
		for _, player := range teamSpec.players {
			team.Players = append(team.Players, domain.TeamPlayer{
				TeamID:   team.ID,
				PlayerID: player.ID,
			})
		}
		game.Teams = append(game.Teams, team)
	}

	if err := db.Create(game).Error; err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	return game
}

// TaskBuilder creates test tasks
type TaskBuilder struct {
	name      string
	points    int
	player    *domain.Player
	completed bool
}

// NewTaskBuilder creates a new TaskBuilder with default values
func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{
		name:   fmt.Sprintf("task_%s", uuid.New().String()[:8]),
		points: 50,
	}
}

// WithName sets the task name
func (b *TaskBuilder) WithName(name string) *TaskBuilder {
	b.name = name
	return b
}

// WithPoints sets the reward
func (b *TaskBuilder) WithPoints(points int) *TaskBuilder {
	b.points = points
	return b
}

// WithPlayer sets the owning player
func (b *TaskBuilder) WithPlayer(player *domain.Player) *TaskBuilder {
	b.player = player
	return b
}

// Completed marks the task as already completed
func (b *TaskBuilder) Completed() *TaskBuilder {
	b.completed = true
	return b
}

// Build creates the task in the database
func (b *TaskBuilder) Build(t *testing.T, db *gorm.DB) *domain.Task {
	t.Helper()

	if b.player == nil {
		_, player := NewUserBuilder().Build(t, db)
		b.player = player
	}

	task := &domain.Task{
		ID:        uuid.New(),
		Name:      b.name,
		Points:    b.points,
		PlayerID:  b.player.ID,
		Completed: b.completed,
		CreatedAt: time.Now(),
	}
	if err := db.Create(task).Error; err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	return task
}
