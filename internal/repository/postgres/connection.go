package postgres

import (
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Player{},
		&domain.Game{},
		&domain.Team{},
		&domain.TeamPlayer{},
		&domain.Task{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		Player:  NewPlayerRepository(db),
		Game:    NewGameRepository(db),
		Task:    NewTaskRepository(db),
	}
}
