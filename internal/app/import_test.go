package app

import (
	"context"
	"database/sql"
	"os"
	"puzreader/internal/puz"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSample(t *testing.T) []byte {
	data, err := os.ReadFile("../puz/testdata/sample.puz")
	require.NoError(t, err)
	return data
}

func TestImportPuzzle(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()

	p, err := svc.ImportPuzzle(ctx, "sample.puz", readSample(t))
	require.NoError(t, err)

	assert.Equal(t, "Sample Title", p.Title)
	assert.Equal(t, "Sample Author", p.Author)
	assert.Equal(t, "© Sample Copyright", p.Copyright)
	assert.Equal(t, "1.3", p.Version)
	assert.Equal(t, int64(5), p.Width)
	assert.Equal(t, int64(5), p.Height)
	assert.Equal(t, int64(6), p.NumClues)
	assert.False(t, p.Scrambled)
	assert.Equal(t, "ABCDEF.G.HIJKLMN.O.PQRSTU", p.Solution)

	stored, err := svc.GetPuzzle(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Grid, stored.Grid)

	clues, err := svc.GetClues(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, clues, 6)

	assert.Equal(t, NumberedClue{Number: 1, Direction: DirectionAcross, X: 0, Y: 0, Text: "First row", Answer: "ABCDE"}, clues[0])
	assert.Equal(t, NumberedClue{Number: 1, Direction: DirectionDown, X: 0, Y: 0, Text: "Left column", Answer: "AFINQ"}, clues[1])
	assert.Equal(t, NumberedClue{Number: 2, Direction: DirectionDown, X: 2, Y: 0, Text: "Middle column", Answer: "CGKOS"}, clues[2])
	assert.Equal(t, NumberedClue{Number: 3, Direction: DirectionDown, X: 4, Y: 0, Text: "Right column", Answer: "EHMPU"}, clues[3])
	assert.Equal(t, NumberedClue{Number: 4, Direction: DirectionAcross, X: 0, Y: 2, Text: "Middle row", Answer: "IJKLM"}, clues[4])
	assert.Equal(t, NumberedClue{Number: 5, Direction: DirectionAcross, X: 0, Y: 4, Text: "Last row", Answer: "QRSTU"}, clues[5])
}

func TestImportPuzzle_Rejections(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()
	sample := readSample(t)

	t.Run("unsupported format", func(t *testing.T) {
		_, err := svc.ImportPuzzle(ctx, "notes.txt", []byte("just text"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("marker sniffed without extension", func(t *testing.T) {
		p, err := svc.ImportPuzzle(ctx, "upload.bin", sample)
		require.NoError(t, err)
		assert.Equal(t, "Sample Title", p.Title)
	})

	t.Run("truncated body", func(t *testing.T) {
		_, err := svc.ImportPuzzle(ctx, "short.puz", sample[:len(sample)-3])
		assert.ErrorIs(t, err, puz.ErrUnterminatedString)
	})

	t.Run("missing marker", func(t *testing.T) {
		_, err := svc.ImportPuzzle(ctx, "empty.puz", []byte{})
		assert.ErrorIs(t, err, puz.ErrMarkerNotFound)
	})

	t.Run("clue count mismatch", func(t *testing.T) {
		// Declare one clue fewer than the grid has entries; the last clue is
		// then read as notes and the real notes end up as trailing bytes.
		data := append([]byte{}, sample...)
		data[0x2E] = 5

		_, err := svc.ImportPuzzle(ctx, "bad.puz", data)
		assert.ErrorIs(t, err, ErrClueCountMismatch)
	})
}

func TestImportPuzzle_UntitledUsesFilename(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	data := readSample(t)
	doc, err := puz.Decode(data)
	require.NoError(t, err)

	// blank out the title bytes, keeping the terminator in place
	start := len(doc.LeadingBytes) + puz.HeaderSize + 50
	edited := append([]byte{}, data...)
	for i := start; i < start+len("Sample Title"); i++ {
		edited[i] = ' '
	}

	p, err := svc.ImportPuzzle(context.Background(), "dir/monday-mini.puz", edited)
	require.NoError(t, err)
	assert.Equal(t, "monday-mini", p.Title)
}

func TestImportPuzzle_Broadcast(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	require.NotNil(t, svc.NC)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 1)
	require.NoError(t, svc.Subscribe(ctx, func(id string) { got <- id }))

	p, err := svc.ImportPuzzle(ctx, "sample.puz", readSample(t))
	require.NoError(t, err)

	select {
	case id := <-got:
		assert.Equal(t, p.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("no import broadcast received")
	}
}

func TestListAndDeletePuzzles(t *testing.T) {
	svc, _, _ := SetupTestService(t)
	ctx := context.Background()
	data := readSample(t)

	first, err := svc.ImportPuzzle(ctx, "a.puz", data)
	require.NoError(t, err)
	_, err = svc.ImportPuzzle(ctx, "b.puz", data)
	require.NoError(t, err)

	list, err := svc.ListPuzzles(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, svc.DeletePuzzle(ctx, first.ID))
	_, err = svc.GetPuzzle(ctx, first.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	clues, err := svc.Queries.GetClues(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, clues)

	err = svc.DeletePuzzle(ctx, first.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
