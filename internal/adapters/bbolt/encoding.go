// Binary encoding for pattern-set blobs.
//
// Format (little-endian):
//
//	version:      uint8 (1)
//	patternCount: uint32
//	per pattern:
//	  len:  uint32
//	  data: [len]byte
package bbolt

import (
	"encoding/binary"
	"fmt"
)

const encodingVersion = 1

// encodePatterns encodes patterns in order. A single buffer is pre-allocated
// to avoid repeated growth.
func encodePatterns(patterns []string) []byte {
	totalSize := 1 + 4
	for _, p := range patterns {
		totalSize += 4 + len(p)
	}

	buf := make([]byte, totalSize)
	buf[0] = encodingVersion
	binary.LittleEndian.PutUint32(buf[1:], uint32(len(patterns)))
	offset := 5
	for _, p := range patterns {
		binary.LittleEndian.PutUint32(buf[offset:], uint32(len(p)))
		offset += 4
		offset += copy(buf[offset:], p)
	}
	return buf
}

// decodePatterns is the inverse of encodePatterns.
func decodePatterns(data []byte) ([]string, error) {
	if len(data) < 5 {
		return nil, fmt.Errorf("pattern blob too short: %d bytes", len(data))
	}
	if data[0] != encodingVersion {
		return nil, fmt.Errorf("unsupported pattern blob version %d", data[0])
	}
	count := binary.LittleEndian.Uint32(data[1:])
	offset := 5

	patterns := make([]string, 0, count)
	for i := uint32(0); i < count; i++ {
		if offset+4 > len(data) {
			return nil, fmt.Errorf("pattern %d: truncated length", i)
		}
		n := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += 4
		if n < 0 || offset+n > len(data) {
			return nil, fmt.Errorf("pattern %d: truncated data", i)
		}
		patterns = append(patterns, string(data[offset:offset+n]))
		offset += n
	}
	if offset != len(data) {
		return nil, fmt.Errorf("pattern blob has %d trailing bytes", len(data)-offset)
	}
	return patterns, nil
}
