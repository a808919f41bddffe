package model

// Note is one canonical row fed to the calculator: a column bitmask
// (column 0 = 0b0001, column 1 = 0b0010, ...) and the row time in seconds.
// Matches the engine's NoteInfo layout.
type Note struct {
	Notes   uint32  `json:"notes"`
	RowTime float32 `json:"row_time"`
}
