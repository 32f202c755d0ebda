// Package puz decodes the Across Lite .puz crossword container.
//
// Decoding is a single forward pass: locate the ACROSS&DOWN marker, read the
// fixed header, read the grids and NUL-terminated strings sized by the header,
// then keep whatever follows as opaque trailing bytes. Byte-slice fields of a
// Document are views into the input buffer and share its lifetime.
package puz

import (
	"fmt"
	"os"
)

// Document is a decoded .puz file. It is not modified after Decode returns.
type Document struct {
	LeadingBytes []byte

	Header

	// Solution and Grid are row-major with stride Width.
	Solution  []rune
	Grid      []rune
	Title     string
	Author    string
	Copyright string
	Clues     []string
	Notes     string

	TrailingBytes []byte
}

// Decode parses a complete .puz buffer. On failure the error is a *DecodeError
// wrapping one of the package's sentinel errors.
func Decode(data []byte) (*Document, error) {
	leading, rest, err := scan(data)
	if err != nil {
		return nil, err
	}

	r := newReader(rest, len(leading), StageHeader)
	h, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	r.stage = StageBody
	b, err := decodeBody(r, h)
	if err != nil {
		return nil, err
	}

	return &Document{
		LeadingBytes:  leading,
		Header:        h,
		Solution:      b.Solution,
		Grid:          b.Grid,
		Title:         b.Title,
		Author:        b.Author,
		Copyright:     b.Copyright,
		Clues:         b.Clues,
		Notes:         b.Notes,
		TrailingBytes: r.rest(),
	}, nil
}

// ReadFile reads the whole file at path and decodes it.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle file: %w", err)
	}
	return Decode(data)
}

// Scrambled reports whether the solution is flagged as encrypted. The solution
// is returned as stored; it is never unscrambled.
func (d *Document) Scrambled() bool {
	return d.ScrambledTag != 0
}

// Cell returns the player grid value at column x, row y.
func (d *Document) Cell(x, y int) (rune, bool) {
	return d.at(d.Grid, x, y)
}

// SolutionAt returns the solution value at column x, row y.
func (d *Document) SolutionAt(x, y int) (rune, bool) {
	return d.at(d.Solution, x, y)
}

func (d *Document) at(cells []rune, x, y int) (rune, bool) {
	w, h := int(d.Width), int(d.Height)
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, false
	}
	return cells[y*w+x], true
}

// IsBlock reports whether a solution cell is a black square.
func IsBlock(r rune) bool {
	return r == '.'
}
