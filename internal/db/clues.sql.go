package db

import (
	"context"
)

const createClue = `-- name: CreateClue :exec
INSERT INTO clues (puzzle_id, position, number, direction, text)
VALUES (?, ?, ?, ?, ?)`

type CreateClueParams struct {
	PuzzleID  string
	Position  int64
	Number    int64
	Direction string
	Text      string
}

func (q *Queries) CreateClue(ctx context.Context, arg CreateClueParams) error {
	_, err := q.db.ExecContext(ctx, createClue,
		arg.PuzzleID,
		arg.Position,
		arg.Number,
		arg.Direction,
		arg.Text,
	)
	return err
}

const getClues = `-- name: GetClues :many
SELECT puzzle_id, position, number, direction, text FROM clues
WHERE puzzle_id = ?
ORDER BY position`

func (q *Queries) GetClues(ctx context.Context, puzzleID string) ([]Clue, error) {
	rows, err := q.db.QueryContext(ctx, getClues, puzzleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Clue
	for rows.Next() {
		var i Clue
		if err := rows.Scan(
			&i.PuzzleID,
			&i.Position,
			&i.Number,
			&i.Direction,
			&i.Text,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteClues = `-- name: DeleteClues :exec
DELETE FROM clues
WHERE puzzle_id = ?`

func (q *Queries) DeleteClues(ctx context.Context, puzzleID string) error {
	_, err := q.db.ExecContext(ctx, deleteClues, puzzleID)
	return err
}
