package transport

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"puzreader/internal/app"
	"puzreader/internal/db"
	"puzreader/internal/logging"
	"puzreader/internal/puz"
	"puzreader/internal/render"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type puzzleResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Author    string         `json:"author"`
	Copyright string         `json:"copyright"`
	Notes     string         `json:"notes,omitempty"`
	Version   string         `json:"version"`
	Width     int64          `json:"width"`
	Height    int64          `json:"height"`
	Scrambled bool           `json:"scrambled"`
	Solution  string         `json:"solution,omitempty"`
	Grid      string         `json:"grid,omitempty"`
	Clues     []clueResponse `json:"clues,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

type clueResponse struct {
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Text      string `json:"text"`
	Length    int    `json:"length"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Stage  string `json:"stage,omitempty"`
	Field  string `json:"field,omitempty"`
	Offset *int   `json:"offset,omitempty"`
}

func newPuzzleResponse(p *db.Puzzle, detail bool) puzzleResponse {
	resp := puzzleResponse{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author,
		Copyright: p.Copyright,
		Version:   p.Version,
		Width:     p.Width,
		Height:    p.Height,
		Scrambled: p.Scrambled,
		CreatedAt: p.CreatedAt,
	}
	if detail {
		resp.Notes = p.Notes
		resp.Solution = p.Solution
		resp.Grid = p.Grid
	}
	return resp
}

func (s *Server) handleImportPuzzle(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "upload.puz"
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "file too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad request"})
		return
	}

	p, err := s.Service.ImportPuzzle(r.Context(), filename, data)
	if err != nil {
		writeImportError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/puzzles/%s", p.ID))
	writeJSON(w, http.StatusCreated, newPuzzleResponse(p, false))
}

func writeImportError(w http.ResponseWriter, err error) {
	var de *puz.DecodeError
	switch {
	case errors.As(err, &de):
		offset := de.Offset
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  de.Err.Error(),
			Stage:  de.Stage.String(),
			Field:  de.Field,
			Offset: &offset,
		})
	case errors.Is(err, app.ErrUnsupportedFormat):
		writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: err.Error()})
	case errors.Is(err, app.ErrClueCountMismatch):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		logging.Default().Error("import failed", logging.FieldError, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "import failed"})
	}
}

func (s *Server) handleListPuzzles(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	puzzles, err := s.Service.ListPuzzles(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, "failed to list puzzles", http.StatusInternalServerError)
		return
	}

	resp := make([]puzzleResponse, 0, len(puzzles))
	for i := range puzzles {
		resp = append(resp, newPuzzleResponse(&puzzles[i], false))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViewPuzzle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}

	clues, err := s.Service.GetClues(r.Context(), p.ID)
	if err != nil {
		http.Error(w, "failed to load clues", http.StatusInternalServerError)
		return
	}

	resp := newPuzzleResponse(p, true)
	for _, c := range clues {
		resp.Clues = append(resp.Clues, clueResponse{
			Number:    c.Number,
			Direction: string(c.Direction),
			X:         c.X,
			Y:         c.Y,
			Text:      c.Text,
			Length:    len([]rune(c.Answer)),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRenderPuzzle(w http.ResponseWriter, r *http.Request) {
	p, ok := s.loadPuzzle(w, r)
	if !ok {
		return
	}

	clues, err := s.Service.GetClues(r.Context(), p.ID)
	if err != nil {
		http.Error(w, "failed to load clues", http.StatusInternalServerError)
		return
	}

	texts := make([]string, 0, len(clues))
	labels := make([]string, 0, len(clues))
	for _, c := range clues {
		texts = append(texts, c.Text)
		labels = append(labels, c.Label())
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	width, height := int(p.Width), int(p.Height)
	if r.URL.Query().Get("solution") == "1" {
		if err := render.Grid(w, []rune(p.Solution), width, height, nil); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		fmt.Fprintln(w)
	}
	if err := render.Grid(w, []rune(p.Grid), width, height, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Fprintln(w)
	_ = render.Clues(w, texts, labels, nil)
}

func (s *Server) handleDeletePuzzle(w http.ResponseWriter, r *http.Request) {
	err := s.Service.DeletePuzzle(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "puzzle not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to delete puzzle", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadPuzzle(w http.ResponseWriter, r *http.Request) (*db.Puzzle, bool) {
	p, err := s.Service.GetPuzzle(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "puzzle not found", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		http.Error(w, "failed to load puzzle", http.StatusInternalServerError)
		return nil, false
	}
	return p, true
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
