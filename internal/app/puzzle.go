package app

import (
	"context"
	"puzreader/internal/db"
)

func (s *Service) GetPuzzle(ctx context.Context, id string) (*db.Puzzle, error) {
	p, err := s.Queries.GetPuzzle(ctx, id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetClues returns the stored clues in file order with their grid positions.
func (s *Service) GetClues(ctx context.Context, puzzleID string) ([]NumberedClue, error) {
	p, err := s.Queries.GetPuzzle(ctx, puzzleID)
	if err != nil {
		return nil, err
	}

	rows, err := s.Queries.GetClues(ctx, puzzleID)
	if err != nil {
		return nil, err
	}

	type key struct {
		number    int
		direction Direction
	}
	grid := make(map[key]NumberedClue)
	for _, e := range entries([]rune(p.Solution), int(p.Width), int(p.Height)) {
		grid[key{e.Number, e.Direction}] = e
	}

	clues := make([]NumberedClue, 0, len(rows))
	for _, r := range rows {
		c := grid[key{int(r.Number), Direction(r.Direction)}]
		c.Number = int(r.Number)
		c.Direction = Direction(r.Direction)
		c.Text = r.Text
		clues = append(clues, c)
	}
	return clues, nil
}

func (s *Service) ListPuzzles(ctx context.Context, limit, offset int) ([]db.Puzzle, error) {
	return s.Queries.ListPuzzles(ctx, db.ListPuzzlesParams{
		Limit:  int64(limit),
		Offset: int64(offset),
	})
}

func (s *Service) DeletePuzzle(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	qtx := s.Queries.WithTx(tx)

	if _, err := qtx.GetPuzzle(ctx, id); err != nil {
		return err
	}
	if err := qtx.DeleteClues(ctx, id); err != nil {
		return err
	}
	if err := qtx.DeletePuzzle(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}
