package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankalp021/intervue/internal/models"
	"github.com/sankalp021/intervue/internal/services"
)

type noopGateway struct{}

func (noopGateway) Broadcast(event string, data any) {}

func newStatusRouter(controller *services.Controller) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStatusHandler(controller)
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/api/poll-history", h.PollHistory)
	return r
}

func TestHealth(t *testing.T) {
	r := newStatusRouter(services.NewController(noopGateway{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestPollHistoryEndpoint(t *testing.T) {
	controller := services.NewController(noopGateway{})
	r := newStatusRouter(controller)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/poll-history", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	require.NoError(t, controller.CreatePoll(models.CreatePollRequest{
		Question: "Q", Options: []string{"A", "B"}, TimeLimit: 300,
	}))
	conn := noopSender{}
	controller.StudentJoin(conn, models.StudentJoinRequest{StudentID: "s1", Name: "Alice"})
	controller.SubmitAnswer(models.SubmitAnswerRequest{StudentID: "s1", AnswerIndex: 0})

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/poll-history", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var entries []models.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Q", entries[0].Question)
	assert.Equal(t, 1, entries[0].TotalResponses)
}

type noopSender struct{}

func (noopSender) Send(event string, data any) error { return nil }
