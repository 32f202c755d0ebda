package render

import (
	"bytes"
	"os"
	"puzreader/internal/puz"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_NonSquareUsesWidthStride(t *testing.T) {
	var buf bytes.Buffer
	err := Grid(&buf, []rune("ABCDEF"), 3, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "ABC\nDEF\n", buf.String())

	buf.Reset()
	err = Grid(&buf, []rune("ABCDEF"), 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "AB\nCD\nEF\n", buf.String())
}

func TestGrid_ShortCells(t *testing.T) {
	err := Grid(&bytes.Buffer{}, []rune("AB"), 2, 2, nil)
	assert.Error(t, err)
}

func TestGrid_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, nil, 0, 0, nil))
	assert.Empty(t, buf.String())
}

func TestDocument(t *testing.T) {
	doc, err := puz.ReadFile("../puz/testdata/sample.puz")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Document(&buf, doc, Options{}))

	want := "ABCDE\nF.G.H\nIJKLM\nN.O.P\nQRSTU\n" +
		"\n" +
		"-----\n-.-.-\n-----\n-.-.-\n-----\n" +
		"\n" +
		"First row\nLeft column\nMiddle column\nRight column\nMiddle row\nLast row\n"
	assert.Equal(t, want, buf.String())
}

func TestDocument_HeaderLabelsNotes(t *testing.T) {
	doc, err := puz.ReadFile("../puz/testdata/sample.puz")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = Document(&buf, doc, Options{
		Header: true,
		Labels: []string{"1A", "1D", "2D", "3D", "4A", "5A"},
		Notes:  true,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("Sample Title\nSample Author\n© Sample Copyright\n\n")))
	assert.Contains(t, out, "1A. First row\n")
	assert.Contains(t, out, "5A. Last row\n")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n\nNotes\n")))
}

func TestClues_MismatchedLabelsIgnored(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Clues(&buf, []string{"a", "b"}, []string{"1A"}, nil))
	assert.Equal(t, "a\nb\n", buf.String())
}

func TestIsColorEnabled(t *testing.T) {
	assert.True(t, IsColorEnabled("always", &bytes.Buffer{}))
	assert.False(t, IsColorEnabled("never", os.Stdout))
	assert.False(t, IsColorEnabled("auto", &bytes.Buffer{}))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, IsColorEnabled("auto", os.Stdout))
}

func TestGrid_CellsPassThrough(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, []rune{'A', '\t', ' ', 'É'}, 4, 1, nil))
	assert.Equal(t, "A\t É\n", buf.String())

	buf.Reset()
	require.NoError(t, Grid(&buf, []rune{'A', '\t'}, 2, 1, NewStyles(true)))
	assert.Contains(t, buf.String(), "\t")
	assert.NotContains(t, buf.String(), "    ")
}
