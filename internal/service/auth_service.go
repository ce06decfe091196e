package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/config"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrEmailInvalid       = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	playerRepo  repository.PlayerRepository
	cfg         *config.Config
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, playerRepo repository.PlayerRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		cfg:         cfg,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

type RegisterResult struct {
	User   *domain.User
	Player *domain.Player
}

type LoginResult struct {
	User    *domain.User
	Player  *domain.Player
	Token   string
	Expires time.Time
}

// Identity is the resolved caller of an authenticated request. IsAdmin is
// read from the live users row, so an admin grant or revoke takes effect
// on the next request.
type Identity struct {
	UserID   uuid.UUID
	PlayerID uuid.UUID
	IsAdmin  bool
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}
	if len(input.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Name:         strings.TrimSpace(input.Name),
		IsAdmin:      false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	player := &domain.Player{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.userRepo.CreateWithPlayer(ctx, user, player); err != nil {
		// The existence check above is racy; the unique index on email is
		// the real guard, so a concurrent register surfaces here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return &RegisterResult{User: user, Player: player}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	// Old sessions are left in place; expiry is enforced by the lookup
	// filter, not by eviction.
	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
		CreatedAt: time.Now(),
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return &LoginResult{
		User:    user,
		Player:  player,
		Token:   token,
		Expires: session.ExpiresAt,
	}, nil
}

// Authenticate resolves a bearer token to a caller identity. An unknown
// or expired token yields ErrInvalidToken, never a lookup failure.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	session, err := s.sessionRepo.GetActiveByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	identity := &Identity{
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}

	if player, err := s.playerRepo.GetByUserID(ctx, user.ID); err == nil {
		identity.PlayerID = player.ID
	}

	return identity, nil
}

// IsAdmin reports whether the token belongs to an administrator. Unknown
// and expired tokens are simply not admins.
func (s *AuthService) IsAdmin(ctx context.Context, token string) bool {
	identity, err := s.Authenticate(ctx, token)
	if err != nil {
		return false
	}
	return identity.IsAdmin
}

func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.DeleteByUserID(ctx, userID)
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
