package db

import (
	"context"
	"time"
)

const puzzleColumns = `id, title, author, copyright, notes, version, width, height, num_clues, scrambled, file_checksum, solution, grid, created_at`

const createPuzzle = `-- name: CreatePuzzle :one
INSERT INTO puzzles (` + puzzleColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING ` + puzzleColumns

type CreatePuzzleParams struct {
	ID           string
	Title        string
	Author       string
	Copyright    string
	Notes        string
	Version      string
	Width        int64
	Height       int64
	NumClues     int64
	Scrambled    bool
	FileChecksum int64
	Solution     string
	Grid         string
	CreatedAt    time.Time
}

func (q *Queries) CreatePuzzle(ctx context.Context, arg CreatePuzzleParams) (Puzzle, error) {
	row := q.db.QueryRowContext(ctx, createPuzzle,
		arg.ID,
		arg.Title,
		arg.Author,
		arg.Copyright,
		arg.Notes,
		arg.Version,
		arg.Width,
		arg.Height,
		arg.NumClues,
		arg.Scrambled,
		arg.FileChecksum,
		arg.Solution,
		arg.Grid,
		arg.CreatedAt,
	)
	var i Puzzle
	err := scanPuzzle(row, &i)
	return i, err
}

const getPuzzle = `-- name: GetPuzzle :one
SELECT ` + puzzleColumns + ` FROM puzzles
WHERE id = ?`

func (q *Queries) GetPuzzle(ctx context.Context, id string) (Puzzle, error) {
	row := q.db.QueryRowContext(ctx, getPuzzle, id)
	var i Puzzle
	err := scanPuzzle(row, &i)
	return i, err
}

const listPuzzles = `-- name: ListPuzzles :many
SELECT ` + puzzleColumns + ` FROM puzzles
ORDER BY created_at DESC, id
LIMIT ? OFFSET ?`

type ListPuzzlesParams struct {
	Limit  int64
	Offset int64
}

func (q *Queries) ListPuzzles(ctx context.Context, arg ListPuzzlesParams) ([]Puzzle, error) {
	rows, err := q.db.QueryContext(ctx, listPuzzles, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Puzzle
	for rows.Next() {
		var i Puzzle
		if err := scanPuzzle(rows, &i); err != nil {
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

const deletePuzzle = `-- name: DeletePuzzle :exec
DELETE FROM puzzles
WHERE id = ?`

func (q *Queries) DeletePuzzle(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deletePuzzle, id)
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPuzzle(s scanner, i *Puzzle) error {
	return s.Scan(
		&i.ID,
		&i.Title,
		&i.Author,
		&i.Copyright,
		&i.Notes,
		&i.Version,
		&i.Width,
		&i.Height,
		&i.NumClues,
		&i.Scrambled,
		&i.FileChecksum,
		&i.Solution,
		&i.Grid,
		&i.CreatedAt,
	)
}
