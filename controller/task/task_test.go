package task

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/model"
	"tasktracker/repository"
	"tasktracker/services"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTaskRouter(t *testing.T) (*gin.Engine, *services.TaskService, *services.TokenService) {
	t.Setenv("JWT_SECRET_KEY", "test-access-secret")
	gin.SetMode(gin.TestMode)

	taskService := services.NewTaskService(repository.NewMemoryTaskRepository(), &testClock{now: testNow})
	tokenService := &services.TokenService{AccessTokenDuration: time.Hour}

	router := gin.New()
	TaskController(router, taskService)
	return router, taskService, tokenService
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTaskEndpoint(t *testing.T) {
	router, _, tokenService := newTaskRouter(t)
	token, err := tokenService.CreateAccessToken("user-a", "user")
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodPost, "/task", token, gin.H{
		"title":       "Ship report",
		"priority":    "high",
		"estimateHrs": 3,
		"deadline":    testNow.Add(24 * time.Hour).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created model.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, 3.0, created.UrgencyScore)
	assert.Equal(t, model.StatusActive, created.Status)
}

func TestCreateTaskEndpointRequiresToken(t *testing.T) {
	router, _, _ := newTaskRouter(t)

	w := doRequest(t, router, http.MethodPost, "/task", "", gin.H{
		"title":       "Ship report",
		"priority":    "high",
		"estimateHrs": 3,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateTaskEndpointNamesInvalidField(t *testing.T) {
	router, _, tokenService := newTaskRouter(t)
	token, err := tokenService.CreateAccessToken("user-a", "user")
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodPost, "/task", token, gin.H{
		"title":       "Ship report",
		"priority":    "high",
		"estimateHrs": 250,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "estimateHrs", body["field"])
}

func TestUpdateTaskEndpointForbidden(t *testing.T) {
	router, taskService, tokenService := newTaskRouter(t)

	created, err := taskService.CreateTask(context.Background(), "user-a", services.TaskInput{
		Title:       "Private",
		Priority:    model.PriorityLow,
		EstimateHrs: 1,
	})
	require.NoError(t, err)

	token, err := tokenService.CreateAccessToken("user-b", "user")
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodPut, "/task/"+created.TaskID, token, gin.H{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteTaskEndpointNotFound(t *testing.T) {
	router, _, tokenService := newTaskRouter(t)
	token, err := tokenService.CreateAccessToken("user-a", "user")
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodDelete, "/task/no-such-task", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListTasksEndpoint(t *testing.T) {
	router, taskService, tokenService := newTaskRouter(t)

	for _, title := range []string{"first", "second"} {
		_, err := taskService.CreateTask(context.Background(), "user-a", services.TaskInput{
			Title:       title,
			Priority:    model.PriorityMedium,
			EstimateHrs: 2,
		})
		require.NoError(t, err)
	}

	token, err := tokenService.CreateAccessToken("user-a", "user")
	require.NoError(t, err)

	w := doRequest(t, router, http.MethodGet, "/task", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []model.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, 2)
}
