package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/tutoriz/internal/learnpath"
	"github.com/abhisek/tutoriz/internal/logger"
	"github.com/abhisek/tutoriz/internal/session"
	"github.com/abhisek/tutoriz/internal/store"
	"github.com/abhisek/tutoriz/internal/tutor"
)

const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &tutor.ErrInvalidInput{Reason: fmt.Sprintf("malformed request body: %v", err)}
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type createSessionRequest struct {
	Problem     string `json:"problem"`
	ProblemType string `json:"problem_type"`
	Mode        string `json:"mode"`
	OwnerID     string `json:"owner_id"`
}

type sessionResponse struct {
	SessionID    string  `json:"session_id"`
	ProblemType  string  `json:"problem_type"`
	Confidence   float64 `json:"confidence"`
	Mode         string  `json:"mode"`
	TutorMessage string  `json:"tutor_message"`
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	problem := session.Problem{Text: req.Problem, Type: req.ProblemType}
	sess, opening, err := s.Tutor.Initialize(r.Context(), problem, session.DifficultyMode(req.Mode), req.OwnerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse{
		SessionID:    sess.ID,
		ProblemType:  sess.Problem.Type,
		Confidence:   sess.Problem.Confidence,
		Mode:         string(sess.Mode),
		TutorMessage: opening,
	})
}

type turnRequest struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
	OwnerID string `json:"owner_id"`
}

func (s *Server) handleTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := s.Tutor.ProcessTurn(r.Context(), chi.URLParam(r, "id"), req.Message, session.DifficultyMode(req.Mode), req.OwnerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"tutor_message": reply})
}

// handleTurnStream delivers the tutor reply as Server-Sent Events, one
// fragment per event. A client disconnect abandons the stream and no
// tutor message is committed.
func (s *Server) handleTurnStream(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	stream, err := s.Tutor.ProcessTurnStreaming(r.Context(), chi.URLParam(r, "id"), req.Message, session.DifficultyMode(req.Mode), req.OwnerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer stream.Close()

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, errors.New("streaming unsupported by connection"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		frag, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			fmt.Fprint(w, "event: done\ndata: {}\n\n")
			flusher.Flush()
			return
		}
		if err != nil {
			if r.Context().Err() != nil {
				// Client went away; nothing was committed.
				logger.FromContext(r.Context()).Debug("turn stream abandoned: %v", tutor.ErrStreamAborted)
				return
			}
			payload, _ := json.Marshal(map[string]string{"code": tutor.ErrorCode(err), "message": err.Error()})
			fmt.Fprintf(w, "event: error\ndata: %s\n\n", payload)
			flusher.Flush()
			return
		}

		payload, _ := json.Marshal(map[string]string{"text": frag})
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

type completionResponse struct {
	IsCompleted bool             `json:"is_completed"`
	Score       float64          `json:"score"`
	Confidence  string           `json:"confidence"`
	Reasons     []string         `json:"reasons,omitempty"`
	Event       *completionEvent `json:"event,omitempty"`
}

type completionEvent struct {
	SessionID        string   `json:"session_id"`
	OwnerID          string   `json:"owner_id,omitempty"`
	Problem          string   `json:"problem"`
	ConceptIDs       []string `json:"concept_ids"`
	HintsUsed        int      `json:"hints_used"`
	TimeSpentMinutes float64  `json:"time_spent_minutes"`
}

func (s *Server) handleCompletion(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")

	sig, event, err := s.Tutor.DetectCompletion(r.Context(), chi.URLParam(r, "id"), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := completionResponse{
		IsCompleted: sig.IsCompleted,
		Score:       sig.Score,
		Confidence:  string(sig.Confidence),
		Reasons:     sig.Reasons,
	}
	if event != nil {
		resp.Event = &completionEvent{
			SessionID:        event.SessionID,
			OwnerID:          event.OwnerID,
			Problem:          event.Problem.Text,
			ConceptIDs:       event.ConceptIDs,
			HintsUsed:        event.HintsUsed,
			TimeSpentMinutes: event.TimeSpentMinutes,
		}
		s.routeCompletion(*event)
	}

	respondJSON(w, http.StatusOK, resp)
}

// routeCompletion advances the owner's learning paths past the concepts
// just mastered and hands the payload to the completion callback.
func (s *Server) routeCompletion(event tutor.CompletionEvent) {
	if s.Registry != nil && s.Paths != nil {
		records := s.Mastery.RecordsFor(event.OwnerID)
		for _, p := range s.Registry.All() {
			if p.OwnerID != event.OwnerID {
				continue
			}
			for _, conceptID := range event.ConceptIDs {
				p = s.Paths.Advance(p, conceptID, records)
			}
			s.Registry.Put(p)
		}
	}
	if s.OnCompletion != nil {
		s.OnCompletion(event)
	}
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	if err := s.Tutor.Clear(r.Context(), chi.URLParam(r, "id"), ownerID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type extractRequest struct {
	Problem     string `json:"problem"`
	ProblemType string `json:"problem_type"`
}

func (s *Server) handleExtractConcepts(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Problem == "" {
		writeError(w, r, &tutor.ErrInvalidInput{Reason: "problem text is empty"})
		return
	}

	ids := s.Mastery.ExtractConcepts(session.Problem{Text: req.Problem, Type: req.ProblemType})
	if ids == nil {
		ids = []string{}
	}
	respondJSON(w, http.StatusOK, map[string][]string{"concept_ids": ids})
}

type practiceRecord struct {
	ConceptID         string   `json:"concept_id"`
	Name              string   `json:"name"`
	Mastery           int      `json:"mastery"`
	ProblemsAttempted int      `json:"problems_attempted"`
	ProblemsSolved    int      `json:"problems_solved"`
	AvgHintsUsed      float64  `json:"avg_hints_used"`
	RelatedConcepts   []string `json:"related_concepts,omitempty"`
}

func (s *Server) handlePracticeNeeds(w http.ResponseWriter, r *http.Request) {
	ownerID := r.URL.Query().Get("owner_id")
	threshold := 70
	if v := r.URL.Query().Get("threshold"); v != "" {
		t, err := strconv.Atoi(v)
		if err != nil || t < 0 || t > 100 {
			writeError(w, r, &tutor.ErrInvalidInput{Reason: "threshold must be an integer in [0,100]"})
			return
		}
		threshold = t
	}

	records := s.Mastery.NeedingPractice(ownerID, threshold)
	out := make([]practiceRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, practiceRecord{
			ConceptID:         rec.ConceptID,
			Name:              rec.Name,
			Mastery:           rec.Mastery,
			ProblemsAttempted: rec.ProblemsAttempted,
			ProblemsSolved:    rec.ProblemsSolved,
			AvgHintsUsed:      rec.AvgHintsUsed,
			RelatedConcepts:   s.Mastery.RelatedConcepts(rec.ConceptID),
		})
	}
	respondJSON(w, http.StatusOK, map[string]any{"concepts": out})
}

type createPathRequest struct {
	Goal    string `json:"goal"`
	OwnerID string `json:"owner_id"`
}

func (s *Server) handleCreatePath(w http.ResponseWriter, r *http.Request) {
	var req createPathRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Goal == "" {
		writeError(w, r, &tutor.ErrInvalidInput{Reason: "goal is empty"})
		return
	}

	path := s.Paths.FromGoal(req.OwnerID, req.Goal, s.Mastery.RecordsFor(req.OwnerID))
	s.Registry.Put(path)
	respondJSON(w, http.StatusCreated, pathData(path))
}

func (s *Server) handleGetPath(w http.ResponseWriter, r *http.Request) {
	path, ok := s.Registry.Get(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, r, "learning path not found")
		return
	}
	respondJSON(w, http.StatusOK, pathData(path))
}

type advancePathRequest struct {
	ConceptID string `json:"concept_id"`
}

func (s *Server) handleAdvancePath(w http.ResponseWriter, r *http.Request) {
	var req advancePathRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.ConceptID == "" {
		writeError(w, r, &tutor.ErrInvalidInput{Reason: "concept_id is empty"})
		return
	}

	path, ok := s.Registry.Get(chi.URLParam(r, "id"))
	if !ok {
		writeNotFound(w, r, "learning path not found")
		return
	}

	updated := s.Paths.Advance(path, req.ConceptID, s.Mastery.RecordsFor(path.OwnerID))
	s.Registry.Put(updated)
	respondJSON(w, http.StatusOK, pathData(updated))
}

func pathData(p *learnpath.Path) store.LearningPathData {
	return learnpath.ToData(p)
}
