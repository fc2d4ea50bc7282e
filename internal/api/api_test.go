package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/tutoriz/internal/learnpath"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/tutor"
)

func newTestServer(responses ...llm.MockResponse) *Server {
	masterySvc := mastery.NewService(nil, nil)
	return &Server{
		Tutor: tutor.New(tutor.Config{
			Sessions: session.NewMemoryStore(time.Hour),
			Provider: llm.NewMockProvider(responses...),
			Mastery:  masterySvc,
		}),
		Mastery:  masterySvc,
		Paths:    learnpath.New(),
		Registry: learnpath.NewRegistry(),
	}
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, newTestServer().Routes(), http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateSession(t *testing.T) {
	srv := newTestServer(llm.MockResponse{Content: "What would isolate x?"})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/sessions", map[string]string{
		"problem":      "Solve for x: 2x + 3 = 11",
		"problem_type": "linear_equations",
		"owner_id":     "owner-1",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp sessionResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "linear_equations", resp.ProblemType)
	assert.Equal(t, "standard", resp.Mode)
	assert.Equal(t, "What would isolate x?", resp.TutorMessage)
}

func TestCreateSessionEmptyProblem(t *testing.T) {
	rec := doJSON(t, newTestServer().Routes(), http.MethodPost, "/api/sessions", map[string]string{
		"problem": "",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "invalid_input", resp.Error.Code)
}

func TestCreateSessionProviderFailure(t *testing.T) {
	srv := newTestServer(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	rec := doJSON(t, srv.Routes(), http.MethodPost, "/api/sessions", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11",
	})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestTurnFlow(t *testing.T) {
	srv := newTestServer(
		llm.MockResponse{Content: "What undoes the +3?"},
		llm.MockResponse{Content: "Good. What is 8 divided by 2?"},
	)
	routes := srv.Routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/sessions", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11", "owner_id": "owner-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created sessionResponse
	decodeBody(t, rec, &created)

	rec = doJSON(t, routes, http.MethodPost, "/api/sessions/"+created.SessionID+"/turns", map[string]string{
		"message": "I subtracted 3", "owner_id": "owner-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var turn map[string]string
	decodeBody(t, rec, &turn)
	assert.Equal(t, "Good. What is 8 divided by 2?", turn["tutor_message"])
}

func TestTurnUnknownSession(t *testing.T) {
	rec := doJSON(t, newTestServer().Routes(), http.MethodPost, "/api/sessions/nope/turns", map[string]string{
		"message": "hello",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTurnWrongOwnerIsNotFound(t *testing.T) {
	srv := newTestServer(llm.MockResponse{Content: "opening?"})
	routes := srv.Routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/sessions", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11", "owner_id": "owner-1",
	})
	var created sessionResponse
	decodeBody(t, rec, &created)

	rec = doJSON(t, routes, http.MethodPost, "/api/sessions/"+created.SessionID+"/turns", map[string]string{
		"message": "hi", "owner_id": "owner-2",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTurnStreamSSE(t *testing.T) {
	srv := newTestServer(
		llm.MockResponse{Content: "opening?"},
		llm.MockResponse{Fragments: []string{"What ", "next?"}},
	)
	routes := srv.Routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/sessions", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11",
	})
	var created sessionResponse
	decodeBody(t, rec, &created)

	rec = doJSON(t, routes, http.MethodPost, "/api/sessions/"+created.SessionID+"/turns/stream", map[string]string{
		"message": "what now",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `data: {"text":"What "}`)
	assert.Contains(t, body, `data: {"text":"next?"}`)
	assert.True(t, strings.Contains(body, "event: done"), "missing done event: %s", body)
}

func TestCompletionEndpoint(t *testing.T) {
	srv := newTestServer(
		llm.MockResponse{Content: "What undoes the +3?"},
		llm.MockResponse{Content: "Correct, x = 4 is the final answer!"},
	)
	var routed []tutor.CompletionEvent
	srv.OnCompletion = func(ev tutor.CompletionEvent) { routed = append(routed, ev) }
	routes := srv.Routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/sessions", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11", "problem_type": "linear_equations", "owner_id": "owner-1",
	})
	var created sessionResponse
	decodeBody(t, rec, &created)

	rec = doJSON(t, routes, http.MethodPost, "/api/sessions/"+created.SessionID+"/turns", map[string]string{
		"message": "x = 4", "owner_id": "owner-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, routes, http.MethodGet, "/api/sessions/"+created.SessionID+"/completion?owner_id=owner-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp completionResponse
	decodeBody(t, rec, &resp)
	require.True(t, resp.IsCompleted, "signal: %+v", resp)
	require.NotNil(t, resp.Event)
	assert.Contains(t, resp.Event.ConceptIDs, "linear_equations")
	assert.Len(t, routed, 1)
}

func TestClearSession(t *testing.T) {
	srv := newTestServer(llm.MockResponse{Content: "opening?"})
	routes := srv.Routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/sessions", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11",
	})
	var created sessionResponse
	decodeBody(t, rec, &created)

	rec = doJSON(t, routes, http.MethodDelete, "/api/sessions/"+created.SessionID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Idempotent.
	rec = doJSON(t, routes, http.MethodDelete, "/api/sessions/"+created.SessionID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestExtractConcepts(t *testing.T) {
	rec := doJSON(t, newTestServer().Routes(), http.MethodPost, "/api/concepts/extract", map[string]string{
		"problem": "Solve for x: 2x + 3 = 11",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string][]string
	decodeBody(t, rec, &resp)
	assert.Contains(t, resp["concept_ids"], "linear_equations")
}

func TestPracticeNeedsSuggestsRelatedConcepts(t *testing.T) {
	srv := newTestServer()
	srv.Mastery.Update(context.Background(), "owner-1", "linear_equations", false, 3, 20)

	rec := doJSON(t, srv.Routes(), http.MethodGet, "/api/concepts/practice?owner_id=owner-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Concepts []practiceRecord `json:"concepts"`
	}
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Concepts, 1)
	assert.Equal(t, "linear_equations", resp.Concepts[0].ConceptID)
	assert.Contains(t, resp.Concepts[0].RelatedConcepts, "inequalities")
}

func TestPathLifecycle(t *testing.T) {
	srv := newTestServer()
	routes := srv.Routes()

	rec := doJSON(t, routes, http.MethodPost, "/api/paths", map[string]string{
		"goal": "master algebra", "owner_id": "owner-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID       string `json:"id"`
		Progress int    `json:"progress"`
		Steps    []struct {
			ConceptID string `json:"concept_id"`
			Completed bool   `json:"completed"`
		} `json:"steps"`
	}
	decodeBody(t, rec, &created)
	require.NotEmpty(t, created.ID)
	assert.Zero(t, created.Progress)
	require.NotEmpty(t, created.Steps)

	first := created.Steps[0].ConceptID
	rec = doJSON(t, routes, http.MethodPost, "/api/paths/"+created.ID+"/advance", map[string]string{
		"concept_id": first,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var advanced struct {
		Progress int `json:"progress"`
		Steps    []struct {
			ConceptID string `json:"concept_id"`
			Completed bool   `json:"completed"`
		} `json:"steps"`
	}
	decodeBody(t, rec, &advanced)
	assert.Positive(t, advanced.Progress)
	assert.True(t, advanced.Steps[0].Completed)

	rec = doJSON(t, routes, http.MethodGet, "/api/paths/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPathNotFound(t *testing.T) {
	rec := doJSON(t, newTestServer().Routes(), http.MethodGet, "/api/paths/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
