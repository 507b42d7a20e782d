package pipeline

// Feature is one discovered open reading frame, half-open [Start, End)
type Feature struct {
	Start uint64
	End   uint64
}

// Length returns End - Start, or 0 for a malformed feature
func (f Feature) Length() uint64 {
	if f.End <= f.Start {
		return 0
	}
	return f.End - f.Start
}
