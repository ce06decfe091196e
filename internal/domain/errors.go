package domain

import "errors"

// Settlement errors
var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameNotActive    = errors.New("game is not active")
	ErrTeamCountInvalid = errors.New("game must have exactly two teams")
	ErrWinnerNotInGame  = errors.New("winner team does not belong to this game")
)

// Task errors
var (
	// ErrTaskNotFound covers both a missing task and an already completed
	// one; callers are not told which.
	ErrTaskNotFound = errors.New("task not found or already completed")
)
