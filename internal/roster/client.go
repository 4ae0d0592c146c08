package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

// TaskRecord is a task as the data service stores it.
type TaskRecord struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Description    string   `json:"description,omitempty"`
	AssignedTo     string   `json:"assignedTo"`
	AssignedBy     string   `json:"assignedBy,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	Status         string   `json:"status,omitempty"`
	StartTime      string   `json:"startTime,omitempty"`
	EndTime        string   `json:"endTime,omitempty"`
	DueDate        string   `json:"dueDate,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
}

type Client interface {
	ListEmployees(ctx context.Context) ([]matching.Employee, error)
	ListSkills(ctx context.Context) ([]matching.Skill, error)
	CreateTask(ctx context.Context, task *TaskRecord) (*TaskRecord, error)
}

type HTTPClient struct {
	baseURL    string
	token      string
	role       string
	httpClient *http.Client
}

// NewHTTPClient talks to the data service at baseURL. Only users whose role equals
// role are returned as employees; an empty role returns every user.
func NewHTTPClient(baseURL, token, role string) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		token:      token,
		role:       role,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) doReq(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("roster %s %s: %d %s", method, path, resp.StatusCode, string(data))
	}
	return data, nil
}

func (c *HTTPClient) ListEmployees(ctx context.Context) ([]matching.Employee, error) {
	data, err := c.doReq(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}
	var users []matching.Employee
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	if c.role == "" {
		return users, nil
	}
	employees := make([]matching.Employee, 0, len(users))
	for _, u := range users {
		if u.Role == c.role {
			employees = append(employees, u)
		}
	}
	return employees, nil
}

func (c *HTTPClient) ListSkills(ctx context.Context) ([]matching.Skill, error) {
	data, err := c.doReq(ctx, http.MethodGet, "/skills", nil)
	if err != nil {
		return nil, err
	}
	var skills []matching.Skill
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return skills, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, task *TaskRecord) (*TaskRecord, error) {
	data, err := c.doReq(ctx, http.MethodPost, "/tasks", task)
	if err != nil {
		return nil, err
	}
	var created TaskRecord
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("decode created task: %w", err)
	}
	return &created, nil
}
