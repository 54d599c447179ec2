// Package murmur2 implements the normalized MurmurHash2 used for archive
// fingerprints: whitespace bytes are stripped from the input before hashing.
package murmur2

import (
	"encoding/binary"
	"hash"

	"github.com/aviddiviner/go-murmur"
)

const seed = 1

type Murmur2CF struct {
	buf []byte
}

func New() hash.Hash {
	return &Murmur2CF{}
}

func (h *Murmur2CF) Write(p []byte) (int, error) {
	for _, b := range p {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		h.buf = append(h.buf, b)
	}
	// report the full length consumed, stripped bytes included
	return len(p), nil
}

func (h *Murmur2CF) Sum(b []byte) []byte {
	sum := make([]byte, 4)
	binary.BigEndian.PutUint32(sum, h.Sum32())
	return append(b, sum...)
}

func (h *Murmur2CF) Sum32() uint32 {
	return murmur.MurmurHash2(h.buf, seed)
}

func (h *Murmur2CF) Reset() {
	h.buf = nil
}

func (h *Murmur2CF) Size() int {
	return 4
}

func (h *Murmur2CF) BlockSize() int {
	return 4
}
