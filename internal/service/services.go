package service

import (
	"github.com/strikbal/rating-backend/internal/config"
	"github.com/strikbal/rating-backend/internal/repository"
)

type Services struct {
	Auth   *AuthService
	Player *PlayerService
	Game   *GameService
	Task   *TaskService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:   NewAuthService(repos.User, repos.Session, repos.Player, cfg),
		Player: NewPlayerService(repos.Player, repos.User),
		Game:   NewGameService(repos.Game),
		Task:   NewTaskService(repos.Task, repos.Player),
	}
}
