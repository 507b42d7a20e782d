package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const readChunk = 1 << 20

// AcceptedExtensions lists file suffixes a genome upload may carry
var AcceptedExtensions = []string{
	".fasta", ".fna", ".fa",
	".fasta.gz", ".fna.gz", ".fa.gz",
}

var (
	ErrUnsupportedFile = errors.New("picker: unsupported file type")
	ErrEmptyFile       = errors.New("picker: empty file")
)

// Accepted reports whether path has a genome file suffix
func Accepted(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, ext := range AcceptedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// ReadGenomeFile reads a FASTA file, plain or gzip, stopping early when ctx is done
func ReadGenomeFile(ctx context.Context, path string) ([]byte, error) {
	if !Accepted(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open genome: %w", err)
	}
	defer f.Close()

	var data []byte
	if st, err := f.Stat(); err == nil && st.Size() > 0 {
		data = make([]byte, 0, st.Size())
	}

	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, err := f.Read(buf)
		data = append(data, buf[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read genome: %w", err)
		}
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	return data, nil
}
