package genome

import (
	_ "embed"
)

//go:embed data/bundled.fa.gz
var bundled []byte

// Bundled returns the embedded gzip FASTA
func Bundled() []byte {
	return bundled
}
