package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *Queries {
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// every pooled connection would otherwise get its own empty database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := Migrate(conn); err != nil {
		t.Fatal(err)
	}
	return New(conn)
}

func TestCreatePuzzle(t *testing.T) {
	q := setupTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC().Round(0)

	p, err := q.CreatePuzzle(ctx, CreatePuzzleParams{
		ID:           "puzzle-1",
		Title:        "Monday",
		Author:       "alice",
		Version:      "1.3",
		Width:        15,
		Height:       15,
		NumClues:     78,
		Scrambled:    true,
		FileChecksum: 0xCDAB,
		Solution:     "AB",
		Grid:         "--",
		CreatedAt:    now,
	})
	require.NoError(t, err)

	assert.Equal(t, "puzzle-1", p.ID)
	assert.Equal(t, "Monday", p.Title)
	assert.Equal(t, int64(15), p.Width)
	assert.True(t, p.Scrambled)
	assert.Equal(t, int64(0xCDAB), p.FileChecksum)
	assert.True(t, now.Equal(p.CreatedAt), "expected %v, got %v", now, p.CreatedAt)

	got, err := q.GetPuzzle(ctx, "puzzle-1")
	require.NoError(t, err)
	assert.Equal(t, p.Solution, got.Solution)

	_, err = q.GetPuzzle(ctx, "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestClues(t *testing.T) {
	q := setupTestDB(t)
	ctx := context.Background()

	_, err := q.CreatePuzzle(ctx, CreatePuzzleParams{ID: "p", CreatedAt: time.Now()})
	require.NoError(t, err)

	for i, text := range []string{"second", "first"} {
		err := q.CreateClue(ctx, CreateClueParams{
			PuzzleID:  "p",
			Position:  int64(1 - i),
			Number:    1,
			Direction: "across",
			Text:      text,
		})
		require.NoError(t, err)
	}

	clues, err := q.GetClues(ctx, "p")
	require.NoError(t, err)
	require.Len(t, clues, 2)
	assert.Equal(t, "first", clues[0].Text)
	assert.Equal(t, "second", clues[1].Text)

	err = q.CreateClue(ctx, CreateClueParams{PuzzleID: "p", Position: 5, Direction: "sideways"})
	assert.Error(t, err)

	require.NoError(t, q.DeleteClues(ctx, "p"))
	require.NoError(t, q.DeletePuzzle(ctx, "p"))
	clues, err = q.GetClues(ctx, "p")
	require.NoError(t, err)
	assert.Empty(t, clues)
}

func TestListPuzzles(t *testing.T) {
	q := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		_, err := q.CreatePuzzle(ctx, CreatePuzzleParams{ID: id, CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	page, err := q.ListPuzzles(ctx, ListPuzzlesParams{Limit: 2, Offset: 0})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "new", page[0].ID)
	assert.Equal(t, "mid", page[1].ID)

	page, err = q.ListPuzzles(ctx, ListPuzzlesParams{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "old", page[0].ID)
}
