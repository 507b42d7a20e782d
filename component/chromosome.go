package component

// ChromosomeComponent marks the static backbone spanning the sequence
type ChromosomeComponent struct {
	ID     string
	Length uint64 // Bases
}
