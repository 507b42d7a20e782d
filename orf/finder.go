// Package orf finds open reading frames on both strands of a sequence
package orf

import (
	"github.com/lixenwraith/orf-cloud/pipeline"
)

// FindAll returns every ORF of at least minLen bases across all six frames
// An ORF runs from ATG through the first in-frame stop, stop included.
// Reverse-strand hits are mapped to forward coordinates. Output is unsorted
func FindAll(seq []byte, minLen uint64) []pipeline.Feature {
	n := len(seq)
	if n < 6 {
		return nil
	}

	var out []pipeline.Feature
	for frame := 0; frame < 3; frame++ {
		scanFrame(seq, frame, minLen, func(start, end int) {
			out = append(out, pipeline.Feature{Start: uint64(start), End: uint64(end)})
		})
	}

	rc := ReverseComplement(seq)
	for frame := 0; frame < 3; frame++ {
		scanFrame(rc, frame, minLen, func(start, end int) {
			out = append(out, pipeline.Feature{Start: uint64(n - end), End: uint64(n - start)})
		})
	}
	return out
}

// scanFrame reports each ORF in one frame; nested starts belong to the open ORF
func scanFrame(seq []byte, frame int, minLen uint64, emit func(start, end int)) {
	start := -1
	for i := frame; i+3 <= len(seq); i += 3 {
		c := seq[i : i+3]
		if start < 0 {
			if isStart(c) {
				start = i
			}
			continue
		}
		if isStop(c) {
			end := i + 3
			if uint64(end-start) >= minLen {
				emit(start, end)
			}
			start = -1
		}
	}
}

func isStart(c []byte) bool {
	return upper(c[0]) == 'A' && upper(c[1]) == 'T' && upper(c[2]) == 'G'
}

func isStop(c []byte) bool {
	if upper(c[0]) != 'T' {
		return false
	}
	b1, b2 := upper(c[1]), upper(c[2])
	return (b1 == 'A' && (b2 == 'A' || b2 == 'G')) || (b1 == 'G' && b2 == 'A')
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

var complement = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = 'N'
	}
	for _, p := range [][2]byte{{'A', 'T'}, {'C', 'G'}, {'G', 'C'}, {'T', 'A'}} {
		t[p[0]] = p[1]
		t[p[0]+('a'-'A')] = p[1]
	}
	return t
}()

// ReverseComplement returns the opposite strand read 5' to 3'
// Bases outside ACGT become N
func ReverseComplement(seq []byte) []byte {
	n := len(seq)
	out := make([]byte, n)
	for i, b := range seq {
		out[n-1-i] = complement[b]
	}
	return out
}
