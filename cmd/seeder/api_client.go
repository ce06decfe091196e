package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL + "/api/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	PlayerID string `json:"playerId"`
}

type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Team struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	Players []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"players"`
}

type Game struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Finished bool   `json:"finished"`
	Teams    []Team `json:"teams"`
}

type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	PlayerID  string `json:"playerId"`
	Completed bool   `json:"completed"`
}

// RegisterUser creates a new user account with a fresh player row
func (c *APIClient) RegisterUser(name string) (*User, error) {
	email := fmt.Sprintf("%s_%d@seed.local", name, time.Now().UnixNano()%100000)

	body := map[string]string{
		"email":    email,
		"password": "seedpassword123",
		"name":     name,
	}

	resp, err := c.post("/auth/register", body, "")
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("register failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		User User `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result.User, nil
}

// Login exchanges credentials for a session token
func (c *APIClient) Login(email, password string) (*LoginResult, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.post("/auth/login", body, "")
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("login failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result LoginResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// ListPlayers fetches the ranked player list
func (c *APIClient) ListPlayers(token string) ([]Player, error) {
	resp, err := c.get("/players", token)
	if err != nil {
		return nil, fmt.Errorf("list players request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("list players failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Players []Player `json:"players"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Players, nil
}

// CreateGame creates an active game with two rostered teams
func (c *APIClient) CreateGame(token, name string, redRoster, blueRoster []string) (*Game, error) {
	body := map[string]interface{}{
		"name": name,
		"teams": []map[string]interface{}{
			{"name": "Red", "color": "#e74c3c", "players": redRoster},
			{"name": "Blue", "color": "#3498db", "players": blueRoster},
		},
	}

	resp, err := c.post("/games", body, token)
	if err != nil {
		return nil, fmt.Errorf("create game request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create game failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Game Game `json:"game"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result.Game, nil
}

// SettleGame records the winner and applies point awards
func (c *APIClient) SettleGame(token, gameID, winnerTeamID string) error {
	body := map[string]string{
		"gameId":       gameID,
		"winnerTeamId": winnerTeamID,
	}

	resp, err := c.put("/games", body, token)
	if err != nil {
		return fmt.Errorf("settle game request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("settle game failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// CreateTask creates a pending task for a player
func (c *APIClient) CreateTask(token, name string, points int, playerID string) (*Task, error) {
	body := map[string]interface{}{
		"name":     name,
		"points":   points,
		"playerId": playerID,
	}

	resp, err := c.post("/tasks", body, token)
	if err != nil {
		return nil, fmt.Errorf("create task request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create task failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Task Task `json:"task"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result.Task, nil
}

// CompleteTask marks a task done and credits its points
func (c *APIClient) CompleteTask(token, taskID string) error {
	body := map[string]string{
		"taskId": taskID,
	}

	resp, err := c.put("/tasks", body, token)
	if err != nil {
		return fmt.Errorf("complete task request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("complete task failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// HTTP helpers

func (c *APIClient) get(path, token string) (*http.Response, error) {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

func (c *APIClient) post(path string, body interface{}, token string) (*http.Response, error) {
	return c.send("POST", path, body, token)
}

func (c *APIClient) put(path string, body interface{}, token string) (*http.Response, error) {
	return c.send("PUT", path, body, token)
}

func (c *APIClient) send(method, path string, body interface{}, token string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}
