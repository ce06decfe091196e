package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/strikbal/rating-backend/internal/domain"
	"github.com/strikbal/rating-backend/internal/service"
)

type GameHandler struct {
	gameService *service.GameService
}

func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type CreateGameRequest struct {
	Name  string            `json:"name"`
	Teams []TeamSpecRequest `json:"teams"`
}

type TeamSpecRequest struct {
	Name    string   `json:"name"`
	Color   string   `json:"color"`
	Players []string `json:"players"`
}

type SettleGameRequest struct {
	GameID       string `json:"gameId"`
	WinnerTeamID string `json:"winnerTeamId"`
}

type GameResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	Finished     bool           `json:"finished"`
	WinnerTeamID *string        `json:"winnerTeamId"`
	CreatedAt    string         `json:"createdAt"`
	Teams        []TeamResponse `json:"teams"`
}

type TeamResponse struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Color   string                 `json:"color"`
	Players []RosterPlayerResponse `json:"players"`
}

type RosterPlayerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		log.Printf("ERROR [game.List] failed to list games: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]GameResponse, 0, len(games))
	for _, g := range games {
		resp = append(resp, gameResponse(g))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"games": resp})
}

func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := service.CreateGameInput{Name: req.Name}
	for _, teamReq := range req.Teams {
		spec := service.TeamSpec{Name: teamReq.Name, Color: teamReq.Color}
		for _, idStr := range teamReq.Players {
			playerID, err := uuid.Parse(idStr)
			if err != nil {
				respondError(w, http.StatusBadRequest, "invalid player id: "+idStr)
				return
			}
			spec.Players = append(spec.Players, playerID)
		}
		input.Teams = append(input.Teams, spec)
	}

	game, err := h.gameService.CreateGame(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrGameNameRequired) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [game.Create] failed to create game: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"game": gameResponse(game)})
}

func (h *GameHandler) Settle(w http.ResponseWriter, r *http.Request) {
	var req SettleGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GameID == "" || req.WinnerTeamID == "" {
		respondError(w, http.StatusBadRequest, "gameId and winnerTeamId are required")
		return
	}

	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	winnerTeamID, err := uuid.Parse(req.WinnerTeamID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid winner team id")
		return
	}

	if err := h.gameService.SettleGame(r.Context(), gameID, winnerTeamID); err != nil {
		switch {
		case errors.Is(err, domain.ErrTeamCountInvalid), errors.Is(err, domain.ErrWinnerNotInGame):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrGameNotActive):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			log.Printf("ERROR [game.Settle] settlement failed: %v", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "game completed, points awarded"})
}

func gameResponse(g *domain.Game) GameResponse {
	resp := GameResponse{
		ID:        g.ID.String(),
		Name:      g.Name,
		Status:    string(g.Status),
		Finished:  g.Status == domain.GameStatusCompleted,
		CreatedAt: g.CreatedAt.Format(time.RFC3339),
		Teams:     make([]TeamResponse, 0, len(g.Teams)),
	}
	if g.WinnerTeamID != nil {
		id := g.WinnerTeamID.String()
		resp.WinnerTeamID = &id
	}

	for _, team := range g.Teams {
		teamResp := TeamResponse{
			ID:      team.ID.String(),
			Name:    team.Name,
			Color:   team.Color,
			Players: make([]RosterPlayerResponse, 0, len(team.Players)),
		}
		for _, tp := range team.Players {
			player := RosterPlayerResponse{ID: tp.PlayerID.String()}
			if tp.Player != nil {
				player.Points = tp.Player.Points
				if tp.Player.User != nil {
					player.Name = tp.Player.User.Name
				}
			}
			teamResp.Players = append(teamResp.Players, player)
		}
		resp.Teams = append(resp.Teams, teamResp)
	}

	return resp
}
