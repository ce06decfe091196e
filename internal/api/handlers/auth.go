package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/strikbal/rating-backend/internal/api/middleware"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	IsAdmin  bool   `json:"isAdmin"`
	PlayerID string `json:"playerId,omitempty"`
}

type PlayerStatsResponse struct {
	ID     string `json:"id"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type LoginResponse struct {
	Token  string               `json:"token"`
	User   UserResponse         `json:"user"`
	Player *PlayerStatsResponse `json:"player,omitempty"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "email, password and name are required")
		return
	}

	result, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailExists):
			respondError(w, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrEmailInvalid), errors.Is(err, service.ErrPasswordTooShort):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			log.Printf("ERROR [auth.Register] registration failed: %v", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"user": userResponse(result.User, result.Player),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.authService.Login(r.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Printf("ERROR [auth.Login] login failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := LoginResponse{
		Token: result.Token,
		User:  userResponse(result.User, result.Player),
	}
	if result.Player != nil {
		resp.Player = &PlayerStatsResponse{
			ID:     result.Player.ID.String(),
			Points: result.Player.Points,
			Wins:   result.Player.Wins,
			Losses: result.Player.Losses,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// Logout revokes every session belonging to the caller, not just the one
// presented, so a stolen token dies with the rest.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	if err := h.authService.Logout(r.Context(), identity.UserID); err != nil {
		log.Printf("ERROR [auth.Logout] failed to revoke sessions: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func userResponse(user *domain.User, player *domain.Player) UserResponse {
	resp := UserResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		Name:    user.Name,
		Avatar:  user.Avatar,
		IsAdmin: user.IsAdmin,
	}
	if player != nil {
		resp.PlayerID = player.ID.String()
	}
	return resp
}
