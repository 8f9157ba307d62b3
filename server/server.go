package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/randresys/magic-pencil-guide/store"
	"github.com/randresys/magic-pencil-guide/tutorial"
)

const (
	maxUploadBytes  = 5 << 20 // 5MB upload limit
	pipelineTimeout = 10 * time.Minute
)

type Server struct {
	pipeline  *tutorial.Pipeline
	artifacts *store.ArtifactStore
	tutorials *tutorialStore
}

// tutorialStore retains finished tutorials in memory for the process
// lifetime so they can be fetched and exported after generation.
type tutorialStore struct {
	mu        sync.Mutex
	tutorials map[string]*tutorial.Tutorial
}

func newStore() *tutorialStore {
	return &tutorialStore{tutorials: make(map[string]*tutorial.Tutorial)}
}

func (s *tutorialStore) set(id string, t *tutorial.Tutorial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tutorials[id] = t
}

func (s *tutorialStore) get(id string) (*tutorial.Tutorial, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tutorials[id]
	return t, ok
}

func New(pipeline *tutorial.Pipeline, artifacts *store.ArtifactStore) (*Server, error) {
	if pipeline == nil {
		return nil, errors.New("tutorial pipeline required")
	}
	if artifacts == nil {
		return nil, errors.New("artifact store required")
	}
	return &Server{
		pipeline:  pipeline,
		artifacts: artifacts,
		tutorials: newStore(),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/generate-tutorial", s.handleGenerate)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/tutorials/", s.handleTutorialByID)
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.artifacts.UploadDir()))))
	mux.Handle("/generated/", http.StripPrefix("/generated/", http.FileServer(http.Dir(s.artifacts.GeneratedDir()))))
	return logMiddleware(mux)
}

// --- Handlers ---

type errorResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type healthResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+512*1024)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No image provided", err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image provided", "")
		return
	}
	defer file.Close()

	difficulty := r.FormValue("difficulty")
	if difficulty == "" {
		writeError(w, http.StatusBadRequest, "No difficulty provided", "")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read upload", err.Error())
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	uploadPath, err := s.artifacts.SaveUpload(data, header.Filename)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save upload", err.Error())
		return
	}
	log.Printf("[server] upload saved to %s difficulty=%s size=%d", uploadPath, difficulty, len(data))

	ctx, cancel := context.WithTimeout(r.Context(), pipelineTimeout)
	defer cancel()
	t, err := s.pipeline.Generate(ctx, data, mimeType, difficulty)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate tutorial", err.Error())
		return
	}

	t.ID = newTutorialID()
	s.tutorials.set(t.ID, t)
	writeJSON(w, t)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, healthResp{Status: "OK", Message: "drawing tutorial service is running"})
}

func (s *Server) handleTutorialByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/tutorials/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	t, ok := s.tutorials.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Tutorial not found", "")
		return
	}

	switch sub {
	case "":
		writeJSON(w, t)
	case "export":
		page, err := store.ExportHTML(t)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to export tutorial", err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	default:
		http.NotFound(w, r)
	}
}

// --- Helpers ---

func newTutorialID() string {
	return strings.ReplaceAll(time.Now().Format("20060102T150405.000000000"), ".", "")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResp{Error: msg, Details: details})
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[server] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
