package handlers

import (
	"log"
	"net/http"

	"github.com/strikbal/rating-backend/internal/api/middleware"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/service"
)

type PlayerHandler struct {
	playerService *service.PlayerService
}

func NewPlayerHandler(playerService *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

// PlayerResponse is the leaderboard row. Email is populated only for
// admin callers; the projection policy lives here and nowhere else.
type PlayerResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type ProfileResponse struct {
	User   UserResponse        `json:"user"`
	Player PlayerStatsResponse `json:"player"`
	Rank   int                 `json:"rank"`
}

// List returns the rating ledger ordered by points. Non-admin callers
// get the same rows with the email column withheld.
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	players, err := h.playerService.Leaderboard(r.Context())
	if err != nil {
		log.Printf("ERROR [player.List] failed to list players: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]PlayerResponse, 0, len(players))
	for _, p := range players {
		resp = append(resp, playerResponse(p, identity.IsAdmin))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"players": resp})
}

// Me returns the caller's profile with their competition rank.
func (h *PlayerHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	profile, err := h.playerService.Profile(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("ERROR [player.Me] failed to load profile: %v", err)
		respondError(w, http.StatusNotFound, "profile not found")
		return
	}

	respondJSON(w, http.StatusOK, ProfileResponse{
		User: userResponse(profile.User, profile.Player),
		Player: PlayerStatsResponse{
			ID:     profile.Player.ID.String(),
			Points: profile.Player.Points,
			Wins:   profile.Player.Wins,
			Losses: profile.Player.Losses,
		},
		Rank: profile.Rank,
	})
}

func playerResponse(p *domain.Player, includeEmail bool) PlayerResponse {
	resp := PlayerResponse{
		ID:     p.ID.String(),
		UserID: p.UserID.String(),
		Points: p.Points,
		Wins:   p.Wins,
		Losses: p.Losses,
	}
	if p.User != nil {
		resp.Name = p.User.Name
		resp.Avatar = p.User.Avatar
		if includeEmail {
			resp.Email = p.User.Email
		}
	}
	return resp
}
