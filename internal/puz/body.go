package puz

import "fmt"

type body struct {
	Solution  []rune
	Grid      []rune
	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string
}

func decodeBody(r *reader, h Header) (body, error) {
	var b body
	var err error

	n := h.CellCount()
	if b.Solution, err = r.cells("solution", n); err != nil {
		return b, err
	}
	if b.Grid, err = r.cells("grid", n); err != nil {
		return b, err
	}
	if b.Title, err = r.cstring("title"); err != nil {
		return b, err
	}
	if b.Author, err = r.cstring("author"); err != nil {
		return b, err
	}
	if b.Copyright, err = r.cstring("copyright"); err != nil {
		return b, err
	}

	b.Clues = make([]string, 0, h.NumClues)
	for i := 0; i < int(h.NumClues); i++ {
		clue, err := r.cstring(fmt.Sprintf("clue %d", i))
		if err != nil {
			return b, err
		}
		b.Clues = append(b.Clues, clue)
	}

	if b.Notes, err = r.cstring("notes"); err != nil {
		return b, err
	}
	return b, nil
}
