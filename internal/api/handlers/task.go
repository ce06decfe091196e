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

type TaskHandler struct {
	taskService *service.TaskService
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type CreateTaskRequest struct {
	Name     string `json:"name"`
	Points   int    `json:"points"`
	PlayerID string `json:"playerId"`
}

type CompleteTaskRequest struct {
	TaskID string `json:"taskId"`
}

type TaskResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName,omitempty"`
	Completed  bool   `json:"completed"`
	CreatedAt  string `json:"createdAt"`
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		log.Printf("ERROR [task.List] failed to list tasks: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, taskResponse(t))
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"tasks": resp})
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Points == 0 || req.PlayerID == "" {
		respondError(w, http.StatusBadRequest, "name, points and playerId are required")
		return
	}

	playerID, err := uuid.Parse(req.PlayerID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid player id")
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), service.CreateTaskInput{
		Name:     req.Name,
		Points:   req.Points,
		PlayerID: playerID,
	})
	if err != nil {
		if errors.Is(err, service.ErrTaskFieldsRequired) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("ERROR [task.Create] failed to create task: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"task": taskResponse(task)})
}

func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.TaskID == "" {
		respondError(w, http.StatusBadRequest, "taskId is required")
		return
	}

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.taskService.CompleteTask(r.Context(), taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		log.Printf("ERROR [task.Complete] completion failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "task completed, points awarded"})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("taskId")
	if idStr == "" {
		respondError(w, http.StatusBadRequest, "taskId is required")
		return
	}

	taskID, err := uuid.Parse(idStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID); err != nil {
		log.Printf("ERROR [task.Delete] deletion failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

func taskResponse(t *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Points:    t.Points,
		PlayerID:  t.PlayerID.String(),
		Completed: t.Completed,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
	if t.Player != nil && t.Player.User != nil {
		resp.PlayerName = t.Player.User.Name
	}
	return resp
}
