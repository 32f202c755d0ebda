package logging

// Field names used across the puzzle tools.
const (
	FieldError    = "error"
	FieldPath     = "path"
	FieldFilename = "filename"
	FieldPuzzleID = "puzzle_id"
	FieldTitle    = "title"
	FieldWidth    = "width"
	FieldHeight   = "height"
	FieldClues    = "clues"
	FieldStage    = "stage"
	FieldOffset   = "offset"
	FieldSubject  = "subject"
	FieldAddr     = "addr"
	FieldVersion  = "version"
)
