package app

import (
	"errors"
	"fmt"
	"puzreader/internal/puz"
)

type Direction string

const (
	DirectionAcross Direction = "across"
	DirectionDown   Direction = "down"
)

var ErrClueCountMismatch = errors.New("clue count does not match grid")

type NumberedClue struct {
	Number    int
	Direction Direction
	X         int
	Y         int
	Text      string
	Answer    string
}

// Label is the short form used in clue lists, e.g. "12A" or "3D".
func (c NumberedClue) Label() string {
	if c.Direction == DirectionDown {
		return fmt.Sprintf("%dD", c.Number)
	}
	return fmt.Sprintf("%dA", c.Number)
}

// NumberClues pairs the document's clues with grid entries, in file order.
func NumberClues(doc *puz.Document) ([]NumberedClue, error) {
	clues := entries(doc.Solution, int(doc.Width), int(doc.Height))
	if len(clues) != len(doc.Clues) {
		return nil, fmt.Errorf("%w: grid has %d entries, file has %d clues", ErrClueCountMismatch, len(clues), len(doc.Clues))
	}

	for i := range clues {
		clues[i].Text = doc.Clues[i]
	}
	return clues, nil
}

// entries numbers a row-major solution grid. A cell gets a number when it
// starts an across or down word of at least two letters; entries come out left
// to right, top to bottom, across before down.
func entries(solution []rune, width, height int) []NumberedClue {
	isBlock := func(x, y int) bool {
		return x < 0 || y < 0 || x >= width || y >= height || puz.IsBlock(solution[y*width+x])
	}

	answer := func(x, y, dx, dy int) string {
		var word []rune
		for ; !isBlock(x, y); x, y = x+dx, y+dy {
			word = append(word, solution[y*width+x])
		}
		return string(word)
	}

	var clues []NumberedClue
	counter := 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isBlock(x, y) {
				continue
			}

			startsAcross := isBlock(x-1, y) && !isBlock(x+1, y)
			startsDown := isBlock(x, y-1) && !isBlock(x, y+1)
			if !startsAcross && !startsDown {
				continue
			}

			if startsAcross {
				clues = append(clues, NumberedClue{Number: counter, Direction: DirectionAcross, X: x, Y: y, Answer: answer(x, y, 1, 0)})
			}
			if startsDown {
				clues = append(clues, NumberedClue{Number: counter, Direction: DirectionDown, X: x, Y: y, Answer: answer(x, y, 0, 1)})
			}
			counter++
		}
	}
	return clues
}
