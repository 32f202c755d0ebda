package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"puzreader/internal/db"
	"puzreader/internal/logging"
	"puzreader/internal/puz"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// DecodePuzzleFile decodes data as .puz when the name says so or when the
// marker is present anywhere in the buffer.
func DecodePuzzleFile(filename string, data []byte) (*puz.Document, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".puz" && !puz.HasMarker(data) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	return puz.Decode(data)
}

// ImportPuzzle decodes a .puz upload and stores it with its numbered clues.
func (s *Service) ImportPuzzle(ctx context.Context, filename string, data []byte) (*db.Puzzle, error) {
	doc, err := DecodePuzzleFile(filename, data)
	if err != nil {
		s.logDecodeFailure(filename, err)
		return nil, err
	}

	clues, err := NumberClues(doc)
	if err != nil {
		return nil, fmt.Errorf("numbering clues: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()
	qtx := s.Queries.WithTx(tx)

	title := strings.Join(strings.Fields(doc.Title), " ")
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}

	p, err := qtx.CreatePuzzle(ctx, db.CreatePuzzleParams{
		ID:           uuid.NewString(),
		Title:        title,
		Author:       doc.Author,
		Copyright:    doc.Copyright,
		Notes:        doc.Notes,
		Version:      doc.Version,
		Width:        int64(doc.Width),
		Height:       int64(doc.Height),
		NumClues:     int64(doc.NumClues),
		Scrambled:    doc.Scrambled(),
		FileChecksum: int64(doc.FileChecksum),
		Solution:     string(doc.Solution),
		Grid:         string(doc.Grid),
		CreatedAt:    time.Now().UTC().Round(0),
	})
	if err != nil {
		return nil, fmt.Errorf("creating puzzle: %w", err)
	}

	for i, c := range clues {
		err := qtx.CreateClue(ctx, db.CreateClueParams{
			PuzzleID:  p.ID,
			Position:  int64(i),
			Number:    int64(c.Number),
			Direction: string(c.Direction),
			Text:      c.Text,
		})
		if err != nil {
			return nil, fmt.Errorf("storing clue %d %s: %w", c.Number, c.Direction, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.Logger.Info("imported puzzle",
		logging.FieldPuzzleID, p.ID,
		logging.FieldTitle, p.Title,
		logging.FieldWidth, p.Width,
		logging.FieldHeight, p.Height,
		logging.FieldClues, len(clues),
	)
	s.BroadcastImport(p.ID)

	return &p, nil
}

func (s *Service) logDecodeFailure(filename string, err error) {
	var de *puz.DecodeError
	if errors.As(err, &de) {
		s.Logger.Warn("decode failed",
			logging.FieldFilename, filename,
			logging.FieldStage, de.Stage,
			logging.FieldOffset, de.Offset,
			logging.FieldError, de.Err,
		)
		return
	}
	s.Logger.Warn("import rejected", logging.FieldFilename, filename, logging.FieldError, err)
}
