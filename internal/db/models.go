package db

import (
	"time"
)

type Clue struct {
	PuzzleID  string
	Position  int64
	Number    int64
	Direction string
	Text      string
}

type Puzzle struct {
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
