package genome

import "bytes"

// Kind tags where genome bytes come from
type Kind uint8

const (
	KindBundled Kind = iota // Embedded demo chromosome
	KindCustom              // Operator-supplied file
)

func (k Kind) String() string {
	switch k {
	case KindBundled:
		return "bundled"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Source selects the genome for a run
// Data is only meaningful for KindCustom and may be empty until a file is picked
type Source struct {
	Kind Kind
	Data []byte
}

// BundledSource selects the embedded chromosome
func BundledSource() Source {
	return Source{Kind: KindBundled}
}

// CustomSource selects operator bytes, raw or gzip
func CustomSource(data []byte) Source {
	return Source{Kind: KindCustom, Data: data}
}

// SameKind compares tags only; drives the selection toggle where an empty
// custom slot and a loaded one are the same choice
func (s Source) SameKind(o Source) bool {
	return s.Kind == o.Kind
}

// Equal compares tag and payload
func (s Source) Equal(o Source) bool {
	return s.Kind == o.Kind && bytes.Equal(s.Data, o.Data)
}

// HasData reports whether the source can start a run
func (s Source) HasData() bool {
	return s.Kind == KindBundled || len(s.Data) > 0
}

// Bytes returns the raw, possibly compressed, genome bytes
func (s Source) Bytes() []byte {
	if s.Kind == KindBundled {
		return Bundled()
	}
	return s.Data
}
