package genome

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

// IsGzip detects the gzip magic number 1F 8B
func IsGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

// DecompressIfNeeded inflates gzip input and passes anything else through
func DecompressIfNeeded(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if !IsGzip(data) {
		return data, nil
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptGzip, err)
	}
	defer gr.Close()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptGzip, err)
	}
	return out, nil
}
