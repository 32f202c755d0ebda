// Package render prints decoded puzzles to a terminal.
package render

import (
	"bufio"
	"fmt"
	"io"
	"puzreader/internal/puz"
	"strings"
)

type Options struct {
	Styles *Styles

	// Header prints title, author and copyright before the grids.
	Header bool

	// Labels, when it has one entry per clue, prefixes each clue line.
	Labels []string

	Notes bool
}

// Grid writes cells as height lines of width characters. Cells are row-major
// with stride width.
func Grid(w io.Writer, cells []rune, width, height int, st *Styles) error {
	if st == nil {
		st = NewStyles(false)
	}
	if len(cells) < width*height {
		return fmt.Errorf("grid has %d cells, want %d", len(cells), width*height)
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < height; row++ {
		var line strings.Builder
		for col := 0; col < width; col++ {
			line.WriteString(styleCell(st, cells[row*width+col]))
		}
		fmt.Fprintln(bw, line.String())
	}
	return bw.Flush()
}

// styleCell passes the cell through untouched unless color is on.
func styleCell(st *Styles, c rune) string {
	s := string(c)
	if !st.color {
		return s
	}
	switch {
	case puz.IsBlock(c):
		return st.Block.Render(s)
	case c == '-':
		return st.Empty.Render(s)
	default:
		return st.Cell.Render(s)
	}
}

// Document writes the solution grid, the player grid and the clue list, each
// section separated by a blank line.
func Document(w io.Writer, doc *puz.Document, opts Options) error {
	st := opts.Styles
	if st == nil {
		st = NewStyles(false)
	}
	width, height := int(doc.Width), int(doc.Height)

	bw := bufio.NewWriter(w)
	if opts.Header {
		fmt.Fprintln(bw, st.Title.Render(doc.Title))
		if doc.Author != "" {
			fmt.Fprintln(bw, doc.Author)
		}
		if doc.Copyright != "" {
			fmt.Fprintln(bw, st.Dim.Render(doc.Copyright))
		}
		if doc.Scrambled() {
			fmt.Fprintln(bw, st.Dim.Render("(solution is scrambled)"))
		}
		fmt.Fprintln(bw)
	}

	if err := Grid(bw, doc.Solution, width, height, st); err != nil {
		return err
	}
	fmt.Fprintln(bw)
	if err := Grid(bw, doc.Grid, width, height, st); err != nil {
		return err
	}
	fmt.Fprintln(bw)

	if err := Clues(bw, doc.Clues, opts.Labels, st); err != nil {
		return err
	}

	if opts.Notes && doc.Notes != "" {
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, st.Dim.Render(doc.Notes))
	}
	return bw.Flush()
}

// Clues writes one clue per line, prefixed by its label when labels line up.
func Clues(w io.Writer, clues, labels []string, st *Styles) error {
	if st == nil {
		st = NewStyles(false)
	}
	useLabels := len(labels) == len(clues) && len(labels) > 0

	bw := bufio.NewWriter(w)
	for i, clue := range clues {
		if useLabels {
			fmt.Fprintf(bw, "%s %s\n", st.Label.Render(labels[i]+"."), clue)
			continue
		}
		fmt.Fprintln(bw, clue)
	}
	return bw.Flush()
}
