package genome

import (
	"bufio"
	"bytes"
	"fmt"
)

// maxLine allows single-line chromosomes
const maxLine = 256 * 1024 * 1024

// Sequence is the first record of a FASTA input, bases upper-cased
type Sequence struct {
	ID    string
	Bases []byte
}

// Len returns the chromosome length in bases
func (s Sequence) Len() uint64 {
	return uint64(len(s.Bases))
}

// ParseFirstSequence returns the first FASTA record of plain text data
// Headerless input is read as a single anonymous record
func ParseFirstSequence(data []byte) (Sequence, error) {
	if len(data) == 0 {
		return Sequence{}, ErrEmptyInput
	}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id       string
		inRecord bool
		seq      = make([]byte, 0, len(data))
	)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if inRecord && len(seq) > 0 {
				break
			}
			id = parseHeaderID(line[1:])
			inRecord = true
			continue
		}
		inRecord = true
		seq = append(seq, bytes.ToUpper(line)...)
	}
	if err := sc.Err(); err != nil {
		return Sequence{}, fmt.Errorf("fasta scan: %w", err)
	}
	if len(seq) == 0 {
		return Sequence{}, ErrNoSequence
	}
	return Sequence{ID: id, Bases: seq}, nil
}

// Load decompresses and parses the first record of src
func Load(src Source) (Sequence, error) {
	raw, err := DecompressIfNeeded(src.Bytes())
	if err != nil {
		return Sequence{}, fmt.Errorf("load %s genome: %w", src.Kind, err)
	}
	seq, err := ParseFirstSequence(raw)
	if err != nil {
		return Sequence{}, fmt.Errorf("load %s genome: %w", src.Kind, err)
	}
	return seq, nil
}

// parseHeaderID takes the first whitespace-delimited token of a header
func parseHeaderID(h []byte) string {
	h = bytes.TrimSpace(h)
	if i := bytes.IndexAny(h, " \t"); i >= 0 {
		h = h[:i]
	}
	return string(h)
}
