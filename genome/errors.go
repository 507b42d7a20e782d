package genome

import "errors"

var (
	// ErrEmptyInput is returned for zero-length genome bytes
	ErrEmptyInput = errors.New("genome: empty input")
	// ErrNoSequence is returned when the input holds no FASTA record with bases
	ErrNoSequence = errors.New("genome: no sequence record")
	// ErrCorruptGzip is returned when gzip magic is present but the stream does not decode
	ErrCorruptGzip = errors.New("genome: corrupt gzip stream")
)
